package segment

import (
	"iter"
	"strings"
)

const (
	// Separator is the separator used for paths held in memory.
	Separator = '/'
	// AltSeparator is accepted on input everywhere and never produced.
	AltSeparator = '\\'

	// Current is the "current directory" component.
	Current = "."
	// Parent is the "parent directory" component.
	Parent = ".."
)

// Segment is one non-empty path component.
type Segment struct {
	// Text is the component, with its casing preserved.
	Text string
	// HasMore reports whether further non-empty components follow.
	HasMore bool
}

// IsSeparator reports whether r separates path components.
func IsSeparator(r rune) bool {
	return r == Separator || r == AltSeparator
}

// All returns the segments of path. The sequence is a pure function of path
// and may be ranged over any number of times.
func All(path string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pieces := split(path)
		for i := 0; i < len(pieces); i++ {
			p := pieces[i]
			if concrete(p) && i+1 < len(pieces) && pieces[i+1] == Parent {
				i++

				continue
			}

			if !yield(Segment{Text: p, HasMore: i+1 < len(pieces)}) {
				return
			}
		}
	}
}

// Texts collects the text of every segment of path.
func Texts(path string) []string {
	var out []string
	for s := range All(path) {
		out = append(out, s.Text)
	}

	return out
}

// Join joins segments with [Separator].
func Join(segments []string) string {
	return strings.Join(segments, string(Separator))
}

// concrete reports whether p names an actual directory that a following
// ".." can cancel.
func concrete(p string) bool {
	return p != Parent && p != Current
}

// split returns the non-empty components of path, dropping any "." that is
// not the very first piece of path.
func split(path string) []string {
	fields := strings.FieldsFunc(path, IsSeparator)
	leadingSep := path != "" && IsSeparator(rune(path[0]))

	out := fields[:0]
	for i, f := range fields {
		if f == Current && (i > 0 || leadingSep) {
			continue
		}

		out = append(out, f)
	}

	return out
}
