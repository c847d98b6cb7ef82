package spy_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/spy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, rawURL, title string) *spy.Entry {
	t.Helper()

	u, err := url.Parse(rawURL)
	require.NoError(t, err)

	return spy.NewEntry(spy.EntryParams{
		URL:      u,
		Metadata: spy.Metadata{Title: title, SiteName: u.Hostname()},
	})
}

func TestFormatBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("formats single bookmark with title", func(t *testing.T) {
		t.Parallel()

		e := newTestEntry(t, "https://example.com/a", "Getting Started")
		bookmarks := []*spy.Bookmark{{Entry: e}}

		result := spy.FormatBookmarks(bookmarks)

		assert.Equal(t, e.ID()+"  Getting Started  https://example.com/a", result)
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		e := newTestEntry(t, "https://example.com/b", "")
		bookmarks := []*spy.Bookmark{{Entry: e}}

		result := spy.FormatBookmarks(bookmarks)

		assert.Equal(t, e.ID()+"  https://example.com/b  https://example.com/b", result)
	})

	t.Run("appends tags", func(t *testing.T) {
		t.Parallel()

		e := newTestEntry(t, "https://example.com/c", "Tagged")
		bookmarks := []*spy.Bookmark{{Entry: e, Tags: []spy.Tag{"go", "web"}}}

		result := spy.FormatBookmarks(bookmarks)

		assert.Equal(t, e.ID()+"  Tagged  https://example.com/c  [go, web]", result)
	})

	t.Run("separates bookmarks with newlines", func(t *testing.T) {
		t.Parallel()

		a := newTestEntry(t, "https://example.com/1", "One")
		b := newTestEntry(t, "https://example.com/2", "Two")

		result := spy.FormatBookmarks([]*spy.Bookmark{{Entry: a}, {Entry: b}})

		assert.Equal(t, a.ID()+"  One  https://example.com/1\n"+b.ID()+"  Two  https://example.com/2", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, spy.FormatBookmarks(nil))
	})
}
