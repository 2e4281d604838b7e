package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeImagePath(t *testing.T) {
	t.Run("anchored under the media root", func(t *testing.T) {
		got, err := normalizeImagePath("media/posts", "cat.png")
		require.NoError(t, err)
		assert.Equal(t, "media/posts/cat.png", got)
	})

	t.Run("already-anchored path kept", func(t *testing.T) {
		got, err := normalizeImagePath("media/posts", "media/posts/cat.png")
		require.NoError(t, err)
		assert.Equal(t, "media/posts/cat.png", got)
	})

	t.Run("empty root keeps the path", func(t *testing.T) {
		got, err := normalizeImagePath("", "uploads/cat.png")
		require.NoError(t, err)
		assert.Equal(t, "uploads/cat.png", got)
	})

	t.Run("empty path stays empty", func(t *testing.T) {
		got, err := normalizeImagePath("media/posts", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("escaping paths rejected", func(t *testing.T) {
		for _, p := range []string{"..", "../x.png", "a/../../x.png", "/etc/passwd"} {
			_, err := normalizeImagePath("media/posts", p)
			assert.Error(t, err, p)
		}
	})
}
