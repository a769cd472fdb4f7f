package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceLink(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(first, []byte("first"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("second"), 0o600))

	t.Run("creates a missing link", func(t *testing.T) {
		require.NoError(t, ForceLink(first, link))
		assertSameFile(t, first, link)
	})

	t.Run("repeating is idempotent", func(t *testing.T) {
		require.NoError(t, ForceLink(first, link))
		assertSameFile(t, first, link)
	})

	t.Run("replaces with the latest source", func(t *testing.T) {
		require.NoError(t, ForceLink(second, link))
		assertSameFile(t, second, link)

		content, err := os.ReadFile(link)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		// the previous source is left untouched
		content, err = os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, "first", string(content))
	})

	t.Run("missing source is reported", func(t *testing.T) {
		missingLink := filepath.Join(dir, "other-link")

		err := ForceLink(filepath.Join(dir, "missing"), missingLink)
		assert.ErrorIs(t, err, os.ErrNotExist)

		var linkErr *os.LinkError
		assert.ErrorAs(t, err, &linkErr)
	})
}

func assertSameFile(t *testing.T, expected, actual string) {
	t.Helper()

	expectedInfo, err := os.Stat(expected)
	require.NoError(t, err)
	actualInfo, err := os.Stat(actual)
	require.NoError(t, err)

	assert.True(t, os.SameFile(expectedInfo, actualInfo))
}
