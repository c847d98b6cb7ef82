package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements spy.Converter at compile time.
var _ spy.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts article headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<article><h1>Field Notes</h1><p>The heron waited.</p><h2>Later</h2><p>It flew off.</p></article>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Field Notes")
		assert.Contains(t, md, "The heron waited.")
		assert.Contains(t, md, "## Later")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://example.com/heron">heron profile</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[heron profile](https://example.com/heron)")
	})

	t.Run("converts lists and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li><strong>Spring</strong> tides</li><li><em>Neap</em> tides</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- **Spring** tides")
		assert.Contains(t, md, "- *Neap* tides")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">fmt.Println("hi")</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, `fmt.Println("hi")`)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Tide</th><th>Range</th></tr></thead><tbody><tr><td>Spring</td><td>Large</td></tr></tbody></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Tide")
		assert.Contains(t, md, "Spring")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert(" \n ")

		require.Error(t, err)
		assert.Equal(t, spy.EINVALID, spy.ErrorCode(err))
	})
}
