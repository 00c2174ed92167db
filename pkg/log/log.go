// Package log builds [slog.Handler] values backed by charmbracelet/log.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

var (
	ErrInvalidFormat = errors.New("invalid log format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// CreateHandler creates a [slog.Handler] writing to w. Colour is only used
// when w is a terminal.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	l := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       f,
		ReportTimestamp: true,
	})

	if !isTerminal(w) {
		l.SetColorProfile(termenv.Ascii)
	}

	l.SetStyles(styles())

	return l, nil
}

// New creates a [slog.Logger] using [CreateHandler].
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	h, err := CreateHandler(w, level, format)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}

// ParseLevel parses a level name. "warning" and "trace" are accepted as
// aliases of "warn" and "debug", and the empty string selects info.
func ParseLevel(level string) (charmlog.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(level)); s {
	case "":
		return charmlog.InfoLevel, nil
	case "warning":
		return charmlog.WarnLevel, nil
	case "trace":
		return charmlog.DebugLevel, nil
	default:
		lvl, err := charmlog.ParseLevel(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
		}

		return lvl, nil
	}
}

// ParseFormat parses a format name. The empty string selects text.
func ParseFormat(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return charmlog.TextFormatter, nil
	case FormatLogfmt:
		return charmlog.LogfmtFormatter, nil
	case FormatJSON:
		return charmlog.JSONFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func styles() *charmlog.Styles {
	s := charmlog.DefaultStyles()

	badge := func(text, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(text).
			Bold(true).
			MaxWidth(5).
			Foreground(lipgloss.Color(color))
	}

	s.Levels[charmlog.DebugLevel] = badge("DEBUG", "63")
	s.Levels[charmlog.InfoLevel] = badge("INFO", "42")
	s.Levels[charmlog.WarnLevel] = badge("WARN", "211")
	s.Levels[charmlog.ErrorLevel] = badge("ERROR", "196")

	return s
}
