package platform

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// MaxSegmentLength is the maximum number of characters in a path component.
const MaxSegmentLength = 255

var (
	// ErrUnknownProfile indicates a profile name that [ParseProfile] does not know.
	ErrUnknownProfile = errors.New("unknown platform profile")

	// ErrSegmentTooLong indicates a component longer than [MaxSegmentLength].
	ErrSegmentTooLong = errors.New("path component too long")

	// ErrForbiddenChar indicates a component containing a forbidden character.
	ErrForbiddenChar = errors.New("forbidden character")

	// ErrReservedName indicates a component that is a reserved device name.
	ErrReservedName = errors.New("reserved file name")
)

// strictChars are forbidden in strict mode in addition to control characters.
const strictChars = `"*/<>?\|`

var reservedNames = func() map[string]struct{} {
	names := map[string]struct{}{"CON": {}, "PRN": {}, "AUX": {}, "NUL": {}}
	for i := range 10 {
		names[fmt.Sprintf("COM%d", i)] = struct{}{}
		names[fmt.Sprintf("LPT%d", i)] = struct{}{}
	}

	return names
}()

// SegmentError describes a component that breaks a naming rule.
type SegmentError struct {
	// Rule is one of the Err* sentinels of this package.
	Rule    error
	Segment string
	Char    rune
}

func (e *SegmentError) Error() string {
	switch {
	case errors.Is(e.Rule, ErrForbiddenChar):
		return fmt.Sprintf("%v %q in %q", e.Rule, e.Char, e.Segment)
	case errors.Is(e.Rule, ErrSegmentTooLong):
		return fmt.Sprintf("%v (max %d characters): %q", e.Rule, MaxSegmentLength, e.Segment)
	default:
		return fmt.Sprintf("%v %q", e.Rule, e.Segment)
	}
}

func (e *SegmentError) Unwrap() error {
	return e.Rule
}

// Validate checks every segment against p and reports all violations.
func Validate(p Profile, segments []string) error {
	var merr *multierror.Error

	for _, seg := range segments {
		if err := p.ValidateSegment(seg); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if merr != nil {
		merr.ErrorFormat = joinErrors
	}

	return merr.ErrorOrNil()
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}

func validateSegment(seg string, strict bool) error {
	if utf8.RuneCountInString(seg) > MaxSegmentLength {
		return &SegmentError{Rule: ErrSegmentTooLong, Segment: seg}
	}

	for _, r := range seg {
		if forbidden(r, strict) {
			return &SegmentError{Rule: ErrForbiddenChar, Segment: seg, Char: r}
		}
	}

	if strict && IsReservedName(seg) {
		return &SegmentError{Rule: ErrReservedName, Segment: seg}
	}

	return nil
}

func forbidden(r rune, strict bool) bool {
	switch {
	case r == 0 || r == ':':
		return true
	case !strict:
		return false
	case r < 0x20 || r == 0x7f:
		return true
	default:
		return strings.ContainsRune(strictChars, r)
	}
}

// IsReservedName reports whether seg is a Windows device name, optionally
// followed by an extension, like "NUL" or "com1.txt".
func IsReservedName(seg string) bool {
	stem, _, _ := strings.Cut(seg, ".")
	_, ok := reservedNames[strings.ToUpper(stem)]

	return ok
}
