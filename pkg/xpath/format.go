package xpath

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/MacroPower/xpath/pkg/pathexpand"
	"github.com/MacroPower/xpath/pkg/segment"
)

// Contracted returns p with the home or working directory replaced by "~"
// or ".", whichever leaves less behind. When neither is a prefix of p, or
// p is not absolute, p is returned unchanged.
func (p Path) Contracted() Path {
	if !p.IsAbs() {
		return p
	}

	home, cwd := p.anchorText(Path.Home), p.anchorText(Path.Cwd)
	c := pathexpand.ContractWith(p.matchText(), home, cwd)

	var marker Marker

	switch c.Marker {
	case pathexpand.HomeMarker:
		marker = HomeDir
	case pathexpand.CurrentMarker:
		marker = CurrentDir
	default:
		return p
	}

	q := p
	q.marker, q.drive = marker, 0
	q.segs = segment.Texts(c.Rest)

	return q
}

// Home returns the home directory of p's context, resolved with p's
// profile.
func (p Path) Home() (Path, error) {
	return p.resolver().Resolve(string(pathexpand.HomeMarker))
}

// Cwd returns the working directory of p's context, resolved with p's
// profile.
func (p Path) Cwd() (Path, error) {
	return p.resolver().Resolve(string(pathexpand.CurrentMarker))
}

func (p Path) resolver() *Resolver {
	return NewResolver(WithContext(p.Context()), WithProfile(p.Profile()))
}

// anchorText returns the matching form of an anchor directory, or "" if it
// can't be resolved.
func (p Path) anchorText(anchor func(Path) (Path, error)) string {
	a, err := anchor(p)
	if err != nil || !a.IsAbs() {
		return ""
	}

	return a.matchText()
}

// matchText renders p with '/' separators, keeping the drive letter only if
// p's profile does.
func (p Path) matchText() string {
	return p.render(rawProfile{noDrive: !p.Profile().KeepsDrive()})
}

// Key returns a case-folded form of p, suitable for use as a map key.
// Paths with equal keys are [Path.Equal].
func (p Path) Key() string {
	return cases.Fold().String(p.String())
}

// Equal reports whether p and o render to the same text, ignoring case.
func (p Path) Equal(o Path) bool {
	return p.Key() == o.Key()
}

// Compare orders paths by their [Path.Key].
func (p Path) Compare(o Path) int {
	return strings.Compare(p.Key(), o.Key())
}

// GoString returns the in-memory form of p as Go syntax.
func (p Path) GoString() string {
	return fmt.Sprintf("xpath.Path(%q)", p.Raw())
}

// Format implements [fmt.Formatter]. The verbs %s and %v print the native
// form, %+v prints the contracted form, %#v prints [Path.GoString] and %q
// prints the native form quoted.
func (p Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		switch {
		case f.Flag('#'):
			io.WriteString(f, p.GoString()) //nolint:errcheck // fmt.State writes can't be handled.
		case f.Flag('+'):
			io.WriteString(f, p.Contracted().String()) //nolint:errcheck // fmt.State writes can't be handled.
		default:
			io.WriteString(f, p.String()) //nolint:errcheck // fmt.State writes can't be handled.
		}
	case 'q':
		fmt.Fprintf(f, "%q", p.String())
	default:
		fmt.Fprintf(f, "%%!%c(xpath.Path=%s)", verb, p.String())
	}
}
