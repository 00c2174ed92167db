package pathexpand

import (
	"strings"

	"github.com/MacroPower/xpath/pkg/envctx"
	"github.com/MacroPower/xpath/pkg/segment"
)

// Contraction is the shorthand form of an absolute path.
type Contraction struct {
	// Rest is the path after the matched prefix, without a leading separator.
	// When Marker is zero it is the unmodified input.
	Rest string
	// Marker is [HomeMarker], [CurrentMarker], or zero when neither matched.
	Marker rune
}

// Contract returns the shortest shorthand for path using the home and
// current working directories from ctx. A directory that cannot be looked
// up is treated as not matching.
func Contract(path string, ctx envctx.Context) Contraction {
	home, err := ctx.HomeDir()
	if err != nil {
		home = ""
	}

	cwd, err := ctx.WorkDir()
	if err != nil {
		cwd = ""
	}

	return ContractWith(path, home, cwd)
}

// ContractWith is [Contract] with the directories given as text. When both
// directories are prefixes of path, the one leaving the shorter remainder
// wins, and the current directory wins a tie.
func ContractWith(path, home, cwd string) Contraction {
	homeRest, homeOK := trimDir(path, home)
	cwdRest, cwdOK := trimDir(path, cwd)

	switch {
	case homeOK && cwdOK && len(homeRest) < len(cwdRest):
		return Contraction{Marker: HomeMarker, Rest: homeRest}
	case cwdOK:
		return Contraction{Marker: CurrentMarker, Rest: cwdRest}
	case homeOK:
		return Contraction{Marker: HomeMarker, Rest: homeRest}
	default:
		return Contraction{Rest: path}
	}
}

// String renders c using sep between the marker and the rest.
func (c Contraction) String(sep byte) string {
	if c.Marker == 0 {
		return c.Rest
	}

	if c.Rest == "" {
		return string(c.Marker)
	}

	return string(c.Marker) + string(sep) + c.Rest
}

// trimDir removes dir from the start of path, along with one following
// separator. The match must end on a component boundary, so "/home/tom"
// is not a prefix of "/home/tommy".
func trimDir(path, dir string) (string, bool) {
	if dir == "" || !strings.HasPrefix(path, dir) {
		return "", false
	}

	rest := path[len(dir):]

	switch {
	case rest == "":
		return "", true
	case segment.IsSeparator(rune(rest[0])):
		return rest[1:], true
	case endsWithSeparator(dir):
		return rest, true
	default:
		return "", false
	}
}
