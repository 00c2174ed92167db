package xpath

import (
	"slices"
	"strings"

	"github.com/MacroPower/xpath/pkg/envctx"
	"github.com/MacroPower/xpath/pkg/pathexpand"
	"github.com/MacroPower/xpath/pkg/platform"
	"github.com/MacroPower/xpath/pkg/segment"
)

// Marker is what a path is anchored to.
type Marker uint8

const (
	// None marks a relative path.
	None Marker = iota
	// CurrentDir marks a path relative to the current working directory,
	// rendered with a leading ".".
	CurrentDir
	// HomeDir marks a path relative to the home directory, rendered with a
	// leading "~".
	HomeDir
	// Root marks an absolute path without a drive letter.
	Root
	// Drive marks an absolute path with a drive letter.
	Drive
)

func (m Marker) String() string {
	switch m {
	case CurrentDir:
		return "current"
	case HomeDir:
		return "home"
	case Root:
		return "root"
	case Drive:
		return "drive"
	default:
		return "none"
	}
}

// Path is a resolved path. It is immutable; methods that change it return a
// new value. The zero value is the empty relative path.
type Path struct {
	profile platform.Profile
	ctx     envctx.Context
	segs    []string
	marker  Marker
	drive   byte
}

// Marker returns what p is anchored to.
func (p Path) Marker() Marker {
	return p.marker
}

// Drive returns the lower-case drive letter of p, or zero if it has none.
func (p Path) Drive() byte {
	return p.drive
}

// Segments returns a copy of the components of p.
func (p Path) Segments() []string {
	return slices.Clone(p.segs)
}

// Base returns the last component of p, or "" if p has none.
func (p Path) Base() string {
	if len(p.segs) == 0 {
		return ""
	}

	return p.segs[len(p.segs)-1]
}

// IsAbs reports whether p is anchored to a root or drive.
func (p Path) IsAbs() bool {
	return p.marker == Root || p.marker == Drive
}

// IsEmpty reports whether p is a relative path with no components.
func (p Path) IsEmpty() bool {
	return p.marker == None && len(p.segs) == 0
}

// HasUnmatchedParent reports whether p still contains a ".." component,
// i.e. it climbs above the point it is anchored to.
func (p Path) HasUnmatchedParent() bool {
	return slices.Contains(p.segs, segment.Parent)
}

// Profile returns the profile p is rendered and validated with.
func (p Path) Profile() platform.Profile {
	if p.profile == nil {
		return platform.Native()
	}

	return p.profile
}

// Context returns the context p was resolved with.
func (p Path) Context() envctx.Context {
	if p.ctx == nil {
		return envctx.Host()
	}

	return p.ctx
}

// Parent returns p without its last component. It reports false if p has
// no components.
func (p Path) Parent() (Path, bool) {
	if len(p.segs) == 0 {
		return p, false
	}

	q := p
	q.segs = slices.Clone(p.segs[:len(p.segs)-1])

	return q, true
}

// WithProfile returns p rendered with another profile. The components are
// not validated again.
func (p Path) WithProfile(profile platform.Profile) Path {
	q := p
	q.profile = profile

	return q
}

// String returns p in the native form of its profile.
func (p Path) String() string {
	return p.render(p.Profile())
}

// Native returns p rendered with profile, e.g. to show a path the way it
// would appear on another operating system.
func (p Path) Native(profile platform.Profile) string {
	return p.render(profile)
}

// Raw returns the in-memory form of p: '/' separators, drive letter kept.
func (p Path) Raw() string {
	return p.render(rawProfile{})
}

func (p Path) render(prof renderer) string {
	sep := string(prof.Separator())
	body := strings.Join(p.segs, sep)

	switch p.marker {
	case Drive:
		if prof.KeepsDrive() {
			return string(p.drive) + ":" + sep + body
		}

		return sep + body
	case Root:
		return sep + body
	case HomeDir:
		return withMarker(pathexpand.HomeMarker, sep, body)
	case CurrentDir:
		return withMarker(pathexpand.CurrentMarker, sep, body)
	default:
		return body
	}
}

func withMarker(marker rune, sep, body string) string {
	if body == "" {
		return string(marker)
	}

	return string(marker) + sep + body
}

// renderer is the part of a profile used to render paths.
type renderer interface {
	Separator() byte
	KeepsDrive() bool
}

type rawProfile struct {
	noDrive bool
}

func (rawProfile) Separator() byte {
	return segment.Separator
}

func (r rawProfile) KeepsDrive() bool {
	return !r.noDrive
}
