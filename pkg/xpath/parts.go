package xpath

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MacroPower/xpath/pkg/pathexpand"
	"github.com/MacroPower/xpath/pkg/platform"
	"github.com/MacroPower/xpath/pkg/segment"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

// Parts is a path given as a list of pieces, joined with '/'. A single
// string is a Parts of length one.
type Parts []string

// Text joins the pieces. Empty pieces are skipped.
func (p Parts) Text() string {
	return strings.Join(slices.DeleteFunc(slices.Clone(p), func(s string) bool {
		return s == ""
	}), string(segment.Separator))
}

// Join returns p with elems appended. Variable references in elems are
// expanded, "." elements are dropped, and a leading ".." in elems cancels
// the last component of p. Shorthand markers in elems are not expanded.
func (p Path) Join(elems ...string) (Path, error) {
	ctx := p.Context()

	expanded := make([]string, 0, len(elems))
	for _, e := range elems {
		v, err := pathexpand.ExpandVars(e, ctx)
		if err != nil {
			return Path{}, err
		}

		expanded = append(expanded, v)
	}

	body := Parts(append(p.Segments(), expanded...)).Text()

	q := p
	// Split as a rooted body so that no "." survives as the first segment.
	q.segs = segment.Texts(string(segment.Separator) + body)

	if err := platform.Validate(q.Profile(), q.segs); err != nil {
		return Path{}, xpatherrors.New(body, fmt.Errorf("%w: %w", xpatherrors.ErrValidation, err))
	}

	return q, nil
}
