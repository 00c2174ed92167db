package xpatherrors

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidPath indicates a path could not be resolved or validated.
	// Every [*InvalidPathError] matches it.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotUTF8 indicates the input contained bytes that are not valid UTF-8.
	ErrNotUTF8 = errors.New("path is not valid UTF-8")

	// ErrEmptyEnvVar indicates a variable reference with an empty name, like `${}`.
	ErrEmptyEnvVar = errors.New("empty environment variable in path")

	// ErrUndefinedEnvVar indicates a variable reference to an unset variable.
	ErrUndefinedEnvVar = errors.New("undefined environment variable")

	// ErrLookup indicates the home or working directory could not be looked up.
	ErrLookup = errors.New("lookup")

	// ErrValidation indicates a path component violated a naming rule.
	ErrValidation = errors.New("invalid path component")

	// ErrNotExist indicates a path does not exist on the filesystem.
	ErrNotExist = errors.New("doesn't exist")

	// ErrWrongKind indicates a path is not of the required kind.
	ErrWrongKind = errors.New("wrong kind of path")
)

// InvalidPathError describes a path that failed to resolve. The message
// always includes the offending text, and the working directory when the
// path was relative.
type InvalidPathError struct {
	// Err is the reason; its message is used verbatim.
	Err error
	// Path is the text that was being resolved.
	Path string
	// Cwd is the working directory used for a relative path, if known.
	Cwd string
}

// New returns an [*InvalidPathError] for path with the given reason.
func New(path string, reason error) *InvalidPathError {
	return &InvalidPathError{Path: path, Err: reason}
}

// NewRelative returns an [*InvalidPathError] for a relative path, recording
// the working directory that was in effect.
func NewRelative(path, cwd string, reason error) *InvalidPathError {
	return &InvalidPathError{Path: path, Cwd: cwd, Err: reason}
}

func (e *InvalidPathError) Error() string {
	var b strings.Builder

	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(ErrInvalidPath.Error())
	}

	b.WriteString(": ")
	b.WriteString(e.Path)

	if e.Cwd != "" {
		b.WriteString(" (cwd: ")
		b.WriteString(e.Cwd)
		b.WriteString(")")
	}

	return b.String()
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrInvalidPath], regardless of the reason.
func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}
