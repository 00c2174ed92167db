package xpath_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/xpath/pkg/platform"
	"github.com/MacroPower/xpath/pkg/xpath"
)

func TestContracted(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		resolver *xpath.Resolver
		raw      string
		want     string
		marker   xpath.Marker
	}{
		{resolver: unix, raw: "/home/tom/docs", want: "~/docs", marker: xpath.HomeDir},
		{resolver: unix, raw: "/home/tom", want: "~", marker: xpath.HomeDir},
		{resolver: unix, raw: "/tmp/x", want: "./x", marker: xpath.CurrentDir},
		{resolver: unix, raw: "/home/tommy", want: "/home/tommy", marker: xpath.Root},
		{resolver: unix, raw: "/etc/hosts", want: "/etc/hosts", marker: xpath.Root},
		{resolver: unix, raw: "rel/x", want: "rel/x", marker: xpath.None},
		{resolver: windows, raw: "C:/Users/tom/docs", want: `~\docs`, marker: xpath.HomeDir},
		{resolver: windows, raw: "c:/tmp", want: ".", marker: xpath.CurrentDir},
		{resolver: windows, raw: "d:/tmp", want: `d:\tmp`, marker: xpath.Drive},
	}

	for _, tc := range tcs {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			p, err := tc.resolver.Resolve(tc.raw)
			require.NoError(t, err)

			c := p.Contracted()
			assert.Equal(t, tc.want, c.String())
			assert.Equal(t, tc.marker, c.Marker())

			// Expanding the contracted form gives back the same path.
			q, err := tc.resolver.Resolve(c.String())
			require.NoError(t, err)
			assert.True(t, q.Equal(p), "%s != %s", q, p)
		})
	}
}

func TestContractedPrefersShorter(t *testing.T) {
	t.Parallel()

	r := xpath.NewResolver(xpath.WithContext(staticCtx("/home/tom", "/home/tom/src")), xpath.WithProfile(platform.Unix))

	p, err := r.Resolve("/home/tom/src/app")
	require.NoError(t, err)
	assert.Equal(t, "./app", p.Contracted().String())

	p, err = r.Resolve("/home/tom/notes")
	require.NoError(t, err)
	assert.Equal(t, "~/notes", p.Contracted().String())

	// A tie goes to the working directory.
	r = xpath.NewResolver(xpath.WithContext(staticCtx("/home/tom", "/home/tom")), xpath.WithProfile(platform.Unix))

	p, err = r.Resolve("/home/tom/x")
	require.NoError(t, err)
	assert.Equal(t, "./x", p.Contracted().String())
}

func TestContractedIgnoresDroppedDrive(t *testing.T) {
	t.Parallel()

	r := xpath.NewResolver(xpath.WithContext(staticCtx("/data", "/tmp")), xpath.WithProfile(platform.Unix))

	p, err := r.Resolve("e:/data/x")
	require.NoError(t, err)
	assert.Equal(t, xpath.Drive, p.Marker())
	assert.Equal(t, "/data/x", p.String())

	c := p.Contracted()
	assert.Equal(t, "~/x", c.String())
	assert.Equal(t, xpath.HomeDir, c.Marker())

	q, err := r.Resolve(c.String())
	require.NoError(t, err)
	assert.True(t, q.Equal(p))
}

func TestHomeAndCwd(t *testing.T) {
	t.Parallel()

	p, err := unix.Resolve("rel")
	require.NoError(t, err)

	home, err := p.Home()
	require.NoError(t, err)
	assert.Equal(t, "/home/tom", home.String())

	cwd, err := p.Cwd()
	require.NoError(t, err)
	assert.Equal(t, "/tmp", cwd.String())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := unix.Resolve("/Data/Config.yaml")
	require.NoError(t, err)

	b, err := unix.Resolve("/data/config.YAML")
	require.NoError(t, err)

	c, err := unix.Resolve("/data/other.yaml")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.Zero(t, a.Compare(b))
	assert.Negative(t, a.Compare(c))
	assert.Positive(t, c.Compare(b))

	// Text is kept as given.
	assert.Equal(t, "/Data/Config.yaml", a.String())

	seen := map[string]xpath.Path{a.Key(): a}
	_, ok := seen[b.Key()]
	assert.True(t, ok)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	p, err := unix.Resolve("~/docs")
	require.NoError(t, err)

	assert.Equal(t, "/home/tom/docs", fmt.Sprintf("%v", p))
	assert.Equal(t, "/home/tom/docs", fmt.Sprintf("%s", p))
	assert.Equal(t, "~/docs", fmt.Sprintf("%+v", p))
	assert.Equal(t, `xpath.Path("/home/tom/docs")`, fmt.Sprintf("%#v", p))
	assert.Equal(t, `"/home/tom/docs"`, fmt.Sprintf("%q", p))
	assert.Equal(t, "%!d(xpath.Path=/home/tom/docs)", fmt.Sprintf("%d", p))

	w, err := windows.Resolve("C:/x/y")
	require.NoError(t, err)

	assert.Equal(t, `c:\x\y`, fmt.Sprintf("%v", w))
	assert.Equal(t, `xpath.Path("c:/x/y")`, w.GoString())
}
