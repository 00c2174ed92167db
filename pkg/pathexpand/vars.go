package pathexpand

import (
	"fmt"
	"strings"

	"github.com/MacroPower/xpath/pkg/envctx"
	"github.com/MacroPower/xpath/pkg/segment"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

// ExpandVars replaces every ${NAME} or %NAME% reference in path with the
// value of NAME from ctx. A reference must start at the beginning of path
// or right after a separator, and be followed by a separator or the end of
// path; anything else is kept literally. An empty or undefined name is an
// error.
func ExpandVars(path string, ctx envctx.Context) (string, error) {
	var (
		out strings.Builder
		key strings.Builder
	)

	out.Grow(len(path))

	rs := []rune(path)
	prevSep := true // The start of the path counts as a separator.

	for i := 0; i < len(rs); {
		ch := rs[i]
		i++

		curly := ch == '$' && prevSep && i < len(rs) && rs[i] == '{'
		percent := ch == '%' && prevSep

		if !curly && !percent {
			out.WriteRune(ch)
			prevSep = segment.IsSeparator(ch)

			continue
		}

		open := "%"
		if curly {
			open = "${"
			i++
		}

		key.Reset()
		key.WriteString(open)

		for i < len(rs) {
			c := rs[i]
			i++

			key.WriteRune(c)

			if (curly && c == '}') || (percent && c == '%') {
				if i < len(rs) && !segment.IsSeparator(rs[i]) {
					break
				}

				ref := key.String()
				name := ref[len(open) : len(ref)-1]
				if name == "" {
					return "", xpatherrors.New(path, xpatherrors.ErrEmptyEnvVar)
				}

				val, ok := ctx.LookupEnv(name)
				if !ok {
					return "", xpatherrors.New(path,
						fmt.Errorf("%w %q in path", xpatherrors.ErrUndefinedEnvVar, name))
				}

				key.Reset()
				out.WriteString(val)

				break
			}

			if segment.IsSeparator(c) || !IsEnvVarChar(c) {
				break
			}
		}

		out.WriteString(key.String())

		// Text consumed while scanning a reference is not scanned again, and
		// the character after it never opens a new reference.
		prevSep = false
	}

	return out.String(), nil
}

// IsEnvVarChar reports whether r may appear in an environment variable name
// inside a path.
func IsEnvVarChar(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
