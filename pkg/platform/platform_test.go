package platform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/xpath/pkg/platform"
)

func TestProfiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('/'), platform.Unix.Separator())
	assert.Equal(t, byte('/'), platform.UnixStrict.Separator())
	assert.Equal(t, byte('\\'), platform.Windows.Separator())

	assert.False(t, platform.Unix.KeepsDrive())
	assert.True(t, platform.Windows.KeepsDrive())

	assert.False(t, platform.Unix.Strict())
	assert.True(t, platform.UnixStrict.Strict())
	assert.True(t, platform.Windows.Strict())

	assert.Equal(t, platform.Windows, platform.ForOS("windows"))
	assert.Equal(t, platform.Unix, platform.ForOS("darwin"))

	assert.Equal(t, platform.UnixStrict, platform.WithStrict(platform.Unix, true))
	assert.Equal(t, platform.Windows, platform.WithStrict(platform.Windows, true))
	assert.Equal(t, platform.Unix, platform.WithStrict(platform.Unix, false))
}

func TestParseProfile(t *testing.T) {
	t.Parallel()

	tcs := map[string]platform.Profile{
		"":        platform.Native(),
		"native":  platform.Native(),
		"unix":    platform.Unix,
		"Linux":   platform.Unix,
		"darwin":  platform.Unix,
		"strict":  platform.UnixStrict,
		"WINDOWS": platform.Windows,
	}

	for name, want := range tcs {
		got, err := platform.ParseProfile(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, p := range []platform.Profile{platform.Unix, platform.UnixStrict, platform.Windows} {
		got, err := platform.ParseProfile(p.Name())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := platform.ParseProfile("plan9")
	require.ErrorIs(t, err, platform.ErrUnknownProfile)
}

func TestValidateSegment(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		rule   error
		name   string
		seg    string
		strict bool
	}{
		{name: "plain", seg: "file.txt"},
		{name: "plain strict", seg: "file.txt", strict: true},
		{name: "unicode", seg: "données", strict: true},
		{name: "parent marker", seg: "..", strict: true},
		{name: "colon", seg: "a:b", rule: platform.ErrForbiddenChar},
		{name: "nul", seg: "a\x00b", rule: platform.ErrForbiddenChar},
		{name: "control char allowed on unix", seg: "a\tb"},
		{name: "control char strict", seg: "a\tb", strict: true, rule: platform.ErrForbiddenChar},
		{name: "delete char strict", seg: "a\x7fb", strict: true, rule: platform.ErrForbiddenChar},
		{name: "question mark allowed on unix", seg: "what?"},
		{name: "question mark strict", seg: "what?", strict: true, rule: platform.ErrForbiddenChar},
		{name: "pipe strict", seg: "a|b", strict: true, rule: platform.ErrForbiddenChar},
		{name: "quote strict", seg: `a"b`, strict: true, rule: platform.ErrForbiddenChar},
		{name: "reserved allowed on unix", seg: "CON"},
		{name: "reserved", seg: "CON", strict: true, rule: platform.ErrReservedName},
		{name: "reserved lower case", seg: "nul", strict: true, rule: platform.ErrReservedName},
		{name: "reserved with extension", seg: "com1.txt", strict: true, rule: platform.ErrReservedName},
		{name: "reserved lpt0", seg: "LPT0", strict: true, rule: platform.ErrReservedName},
		{name: "reserved prefix only", seg: "CONSOLE", strict: true},
		{name: "max length", seg: strings.Repeat("a", 255)},
		{name: "too long", seg: strings.Repeat("a", 256), rule: platform.ErrSegmentTooLong},
		{name: "length counts characters", seg: strings.Repeat("é", 255)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := platform.WithStrict(platform.Unix, tc.strict)
			err := p.ValidateSegment(tc.seg)
			if tc.rule == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tc.rule)

			var serr *platform.SegmentError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.seg, serr.Segment)
		})
	}
}

func TestWindowsValidates(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, platform.Windows.ValidateSegment("aux.log"), platform.ErrReservedName)
	require.ErrorIs(t, platform.Windows.ValidateSegment("a<b"), platform.ErrForbiddenChar)
	require.NoError(t, platform.Windows.ValidateSegment("Program Files"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, platform.Validate(platform.Windows, []string{"a", "b"}))
	require.NoError(t, platform.Validate(platform.Windows, nil))

	err := platform.Validate(platform.Windows, []string{"ok", "a:b", "CON", "x?"})
	require.ErrorIs(t, err, platform.ErrForbiddenChar)
	require.ErrorIs(t, err, platform.ErrReservedName)
	assert.Equal(t,
		`forbidden character ':' in "a:b"; reserved file name "CON"; forbidden character '?' in "x?"`,
		err.Error())
}
