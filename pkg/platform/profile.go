package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Profile is the set of rendering and validation rules for a family of
// operating systems. The set of implementations is closed.
type Profile interface {
	// Name returns the profile name accepted by [ParseProfile].
	Name() string
	// Separator returns the native path separator.
	Separator() byte
	// KeepsDrive reports whether drive letters are rendered.
	KeepsDrive() bool
	// Strict reports whether Windows naming rules apply.
	Strict() bool
	// ValidateSegment checks a single path component.
	ValidateSegment(seg string) error

	sealed()
}

var (
	// Unix is the profile for Linux, macOS and other Unix-like systems.
	Unix Profile = unix{}
	// UnixStrict renders like [Unix] but validates like [Windows].
	UnixStrict Profile = unix{strict: true}
	// Windows is the profile for Windows.
	Windows Profile = windows{}
)

type unix struct {
	strict bool
}

func (u unix) Name() string {
	if u.strict {
		return "strict"
	}

	return "unix"
}

func (unix) Separator() byte {
	return '/'
}

func (unix) KeepsDrive() bool {
	return false
}

func (u unix) Strict() bool {
	return u.strict
}

func (u unix) ValidateSegment(seg string) error {
	return validateSegment(seg, u.strict)
}

func (unix) sealed() {}

type windows struct{}

func (windows) Name() string {
	return "windows"
}

func (windows) Separator() byte {
	return '\\'
}

func (windows) KeepsDrive() bool {
	return true
}

func (windows) Strict() bool {
	return true
}

func (windows) ValidateSegment(seg string) error {
	return validateSegment(seg, true)
}

func (windows) sealed() {}

// Native returns the profile for the operating system the program runs on.
func Native() Profile {
	return ForOS(runtime.GOOS)
}

// ForOS returns the profile for a GOOS value.
func ForOS(goos string) Profile {
	if goos == "windows" {
		return Windows
	}

	return Unix
}

// WithStrict returns p with Windows naming rules applied when strict is
// set. Profiles that are already strict are returned unchanged.
func WithStrict(p Profile, strict bool) Profile {
	if strict && !p.Strict() {
		return UnixStrict
	}

	return p
}

// ParseProfile returns the profile with the given name. It accepts the
// names returned by [Profile.Name], GOOS values, and "native" (or "").
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native(), nil
	case "unix", "linux", "darwin", "freebsd", "netbsd", "openbsd":
		return Unix, nil
	case "strict":
		return UnixStrict, nil
	case "windows":
		return Windows, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}
