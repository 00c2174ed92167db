package xpath

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/MacroPower/xpath/pkg/envctx"
	"github.com/MacroPower/xpath/pkg/pathexpand"
	"github.com/MacroPower/xpath/pkg/platform"
	"github.com/MacroPower/xpath/pkg/segment"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

// Resolver turns text into [Path] values. It holds no mutable state and
// may be shared between goroutines, provided its [envctx.Context] is safe
// for concurrent use.
type Resolver struct {
	ctx     envctx.Context
	profile platform.Profile
	logger  *slog.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithContext sets the context shorthand and variables are resolved
// against. The default is [envctx.Host].
func WithContext(ctx envctx.Context) Option {
	return func(r *Resolver) {
		r.ctx = ctx
	}
}

// WithProfile sets the profile paths are validated and rendered with. The
// default is [platform.Native].
func WithProfile(p platform.Profile) Option {
	return func(r *Resolver) {
		r.profile = p
	}
}

// WithStrict applies Windows naming rules regardless of the profile.
// Options are applied in order, so use it after [WithProfile].
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.profile = platform.WithStrict(r.profile, strict)
	}
}

// WithLogger sets the logger used for debug output. The default is
// [slog.Default] at the time of resolution.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a [Resolver].
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		ctx:     envctx.Host(),
		profile: platform.Native(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Profile returns the profile r validates and renders with.
func (r *Resolver) Profile() platform.Profile {
	return r.profile
}

// Context returns the context r resolves against.
func (r *Resolver) Context() envctx.Context {
	return r.ctx
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}

	return slog.Default()
}

// Resolve expands, normalizes and validates raw.
func (r *Resolver) Resolve(raw string) (Path, error) {
	p, err := r.resolve(raw)
	if err != nil {
		r.log().Debug("failed to resolve path", "raw", raw, "err", err)

		return Path{}, err
	}

	r.log().Debug("resolved path", "raw", raw, "path", p.String())

	return p, nil
}

// ResolveParts resolves the text of parts.
func (r *Resolver) ResolveParts(parts Parts) (Path, error) {
	return r.Resolve(parts.Text())
}

// ResolveBytes resolves a path given as bytes, e.g. read from a file or
// converted from an OS path. Bytes that are not valid UTF-8 are rejected.
func (r *Resolver) ResolveBytes(b []byte) (Path, error) {
	return r.Resolve(string(b))
}

func (r *Resolver) resolve(raw string) (Path, error) {
	if !utf8.ValidString(raw) {
		text := strings.ToValidUTF8(raw, "�")

		return Path{}, r.invalid(text, isRelative(text), xpatherrors.ErrNotUTF8)
	}

	expanded, err := pathexpand.Expand(raw, r.ctx)
	if err != nil {
		return Path{}, r.invalid(raw, isRelative(raw), err)
	}

	p, err := r.parse(expanded)
	if err != nil {
		return Path{}, r.invalid(raw, isRelative(raw), err)
	}

	if err := platform.Validate(r.profile, p.segs); err != nil {
		reason := fmt.Errorf("%w: %w", xpatherrors.ErrValidation, err)

		return Path{}, r.invalid(raw, p.marker == None, reason)
	}

	return p, nil
}

// invalid returns err as an [*xpatherrors.InvalidPathError] for raw. Errors
// for relative paths record the working directory, if it can be looked up.
func (r *Resolver) invalid(raw string, relative bool, err error) error {
	var ipe *xpatherrors.InvalidPathError
	if errors.As(err, &ipe) {
		c := *ipe
		ipe = &c
	} else {
		ipe = xpatherrors.New(raw, err)
	}

	if !relative || ipe.Cwd != "" {
		return ipe
	}

	cwd, cwdErr := r.ctx.WorkDir()
	if cwdErr != nil {
		r.log().Debug("no working directory for relative path error", "raw", raw, "err", cwdErr)

		return ipe
	}

	ipe.Cwd = cwd

	return ipe
}

// isRelative reports whether raw, as written, is neither shorthand, rooted
// nor prefixed with a drive letter.
func isRelative(raw string) bool {
	if pathexpand.DetectStart(raw) != pathexpand.StartNone {
		return false
	}

	if raw != "" && segment.IsSeparator(rune(raw[0])) {
		return false
	}

	_, _, drive := cutDrive(raw)

	return !drive
}

// parse splits expanded text into a path without validating it.
func (r *Resolver) parse(expanded string) (Path, error) {
	p := Path{profile: r.profile, ctx: r.ctx}

	rest := expanded

	switch drive, after, ok := cutDrive(expanded); {
	case ok && (after == "" || segment.IsSeparator(rune(after[0]))):
		p.marker, p.drive, rest = Drive, drive, after
	case ok:
		// "c:dir" is relative to the working directory of that drive.
		cwd, err := r.ctx.WorkDir()
		if err != nil {
			return Path{}, fmt.Errorf("could not resolve the current working directory: %w", err)
		}

		p.marker, rest = Root, cwd+string(segment.Separator)+after
		if d, cwdRest, cwdOK := cutDrive(cwd); cwdOK {
			p.marker, p.drive = Drive, d
			rest = cwdRest + string(segment.Separator) + after
		}
	case rest != "" && segment.IsSeparator(rune(rest[0])):
		p.marker = Root
	}

	if p.marker == Root && r.profile.KeepsDrive() {
		// A rooted path is on the same drive as the working directory.
		if cwd, err := r.ctx.WorkDir(); err == nil {
			if d, _, ok := cutDrive(cwd); ok {
				p.marker, p.drive = Drive, d
			}
		}
	}

	p.segs = segment.Texts(rest)

	return p, nil
}

// cutDrive splits a leading drive letter like "C:" from s, returning the
// letter in lower case.
func cutDrive(s string) (byte, string, bool) {
	if len(s) < 2 || s[1] != ':' {
		return 0, s, false
	}

	c := s[0] | 0x20
	if c < 'a' || c > 'z' {
		return 0, s, false
	}

	return c, s[2:], true
}

var defaultResolver atomic.Pointer[Resolver]

// Default returns the resolver used by the package-level functions and when
// decoding paths.
func Default() *Resolver {
	if r := defaultResolver.Load(); r != nil {
		return r
	}

	return NewResolver()
}

// SetDefault replaces the resolver returned by [Default].
func SetDefault(r *Resolver) {
	defaultResolver.Store(r)
}

// Resolve resolves raw with the [Default] resolver.
func Resolve(raw string) (Path, error) {
	return Default().Resolve(raw)
}

// ResolveParts resolves parts with the [Default] resolver.
func ResolveParts(parts Parts) (Path, error) {
	return Default().ResolveParts(parts)
}

// MustResolve is like [Resolve] but panics on error.
func MustResolve(raw string) Path {
	p, err := Resolve(raw)
	if err != nil {
		panic(err)
	}

	return p
}
