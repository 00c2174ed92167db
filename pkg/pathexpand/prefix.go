package pathexpand

import (
	"fmt"
	"strings"

	"github.com/MacroPower/xpath/pkg/envctx"
	"github.com/MacroPower/xpath/pkg/segment"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

const (
	// HomeMarker is the shorthand for the home directory.
	HomeMarker = '~'
	// CurrentMarker is the shorthand for the current working directory.
	CurrentMarker = '.'
)

// Start is the kind of shorthand a raw path begins with.
type Start int

const (
	StartNone Start = iota
	StartHome
	StartCurrent
)

func (s Start) String() string {
	switch s {
	case StartHome:
		return "home"
	case StartCurrent:
		return "current"
	default:
		return "none"
	}
}

// DetectStart reports which shorthand, if any, raw begins with.
func DetectStart(raw string) Start {
	switch {
	case isMarked(raw, HomeMarker):
		return StartHome
	case isMarked(raw, CurrentMarker):
		return StartCurrent
	default:
		return StartNone
	}
}

func isMarked(raw string, marker byte) bool {
	if raw == "" || raw[0] != marker {
		return false
	}

	return len(raw) == 1 || segment.IsSeparator(rune(raw[1]))
}

// Expand expands a leading shorthand and then any variable references in
// raw. Text with neither is returned unchanged.
func Expand(raw string, ctx envctx.Context) (string, error) {
	path, start, err := ExpandPrefix(raw, ctx)
	if err != nil {
		return "", err
	}

	if start == StartNone && !strings.ContainsAny(path, "$%") {
		return path, nil
	}

	return ExpandVars(path, ctx)
}

// ExpandPrefix replaces a leading "~" or "." marker in raw with the home or
// current working directory taken from ctx.
func ExpandPrefix(raw string, ctx envctx.Context) (string, Start, error) {
	start := DetectStart(raw)

	var (
		prefix string
		err    error
	)

	switch start {
	case StartHome:
		prefix, err = ctx.HomeDir()
		if err != nil {
			return "", start, xpatherrors.New(raw,
				fmt.Errorf("could not resolve the home directory: %w", err))
		}
	case StartCurrent:
		prefix, err = ctx.WorkDir()
		if err != nil {
			return "", start, xpatherrors.New(raw,
				fmt.Errorf("could not resolve the current working directory: %w", err))
		}
	default:
		return raw, start, nil
	}

	return joinPrefix(prefix, raw[1:]), start, nil
}

func joinPrefix(prefix, rest string) string {
	var b strings.Builder

	b.Grow(len(prefix) + len(rest) + 1)
	b.WriteString(prefix)

	if !endsWithSeparator(prefix) && !startsWithSeparator(rest) {
		b.WriteByte(segment.Separator)
	}

	b.WriteString(rest)

	return b.String()
}

func startsWithSeparator(s string) bool {
	return s != "" && segment.IsSeparator(rune(s[0]))
}

func endsWithSeparator(s string) bool {
	return s != "" && segment.IsSeparator(rune(s[len(s)-1]))
}
