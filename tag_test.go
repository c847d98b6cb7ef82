package spy_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/spy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and trims", func(t *testing.T) {
		t.Parallel()

		tag, err := spy.ParseTag("  Go-Lang_2 ")

		require.NoError(t, err)
		assert.Equal(t, spy.Tag("go-lang_2"), tag)
	})

	t.Run("rejects empty tag", func(t *testing.T) {
		t.Parallel()

		_, err := spy.ParseTag("   ")

		require.Error(t, err)
		assert.Equal(t, spy.EINVALID, spy.ErrorCode(err))
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		t.Parallel()

		_, err := spy.ParseTag("no spaces")

		require.Error(t, err)
		assert.Equal(t, spy.EINVALID, spy.ErrorCode(err))
	})

	t.Run("rejects tags longer than 30 characters", func(t *testing.T) {
		t.Parallel()

		_, err := spy.ParseTag(strings.Repeat("a", 31))

		require.Error(t, err)
	})
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates case-insensitively", func(t *testing.T) {
		t.Parallel()

		tags, err := spy.ParseTags([]string{"Go", "rust", "go"})

		require.NoError(t, err)
		assert.Equal(t, []spy.Tag{"go", "rust"}, tags)
	})

	t.Run("fails on first invalid tag", func(t *testing.T) {
		t.Parallel()

		_, err := spy.ParseTags([]string{"ok", "not ok"})

		require.Error(t, err)
	})
}
