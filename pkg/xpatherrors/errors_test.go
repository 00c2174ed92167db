package xpatherrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

func TestInvalidPathError(t *testing.T) {
	t.Parallel()

	t.Run("absolute", func(t *testing.T) {
		t.Parallel()

		err := xpatherrors.New("${}", xpatherrors.ErrEmptyEnvVar)
		assert.Equal(t, "empty environment variable in path: ${}", err.Error())
		require.ErrorIs(t, err, xpatherrors.ErrInvalidPath)
		require.ErrorIs(t, err, xpatherrors.ErrEmptyEnvVar)
		assert.NotErrorIs(t, err, xpatherrors.ErrValidation)
	})

	t.Run("relative includes cwd", func(t *testing.T) {
		t.Parallel()

		reason := fmt.Errorf("%w: forbidden character", xpatherrors.ErrValidation)
		err := xpatherrors.NewRelative("a:b", "/tmp", reason)
		assert.Equal(t, "invalid path component: forbidden character: a:b (cwd: /tmp)", err.Error())
		require.ErrorIs(t, err, xpatherrors.ErrValidation)
	})

	t.Run("nil reason", func(t *testing.T) {
		t.Parallel()

		err := xpatherrors.New("x", nil)
		assert.Equal(t, "invalid path: x", err.Error())
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("load config: %w", xpatherrors.New("x", xpatherrors.ErrNotUTF8))

		var ipe *xpatherrors.InvalidPathError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, "x", ipe.Path)
		assert.True(t, errors.Is(err, xpatherrors.ErrInvalidPath))
	})
}
