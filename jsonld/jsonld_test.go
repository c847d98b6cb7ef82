package jsonld_test

import (
	"testing"

	"github.com/fwojciec/spy/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("skips blocks that are not valid JSON", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"name":"A"}`, `{not json`, `[{"name":"B"}]`})

		require.Len(t, docs, 2)
		assert.Equal(t, []string{"A", "B"}, jsonld.Titles(docs))
	})

	t.Run("returns empty slice for no blocks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, jsonld.Parse(nil))
	})
}

func TestTitles(t *testing.T) {
	t.Parallel()

	t.Run("flattens @graph", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@graph": [{"@type":"WebPage","headline":"T"}]}`})

		assert.Equal(t, []string{"T"}, jsonld.Titles(docs))
	})

	t.Run("collects headline before name before alternativeHeadline", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"alternativeHeadline":"C","name":"B","headline":"A"}`})

		assert.Equal(t, []string{"A", "B", "C"}, jsonld.Titles(docs))
	})

	t.Run("keeps document order of blocks", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"name":"First"}`, `{"headline":"Second"}`})

		assert.Equal(t, []string{"First", "Second"}, jsonld.Titles(docs))
	})

	t.Run("descends into nested objects in sorted key order", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"zeta":{"name":"Z"},"alpha":{"name":"A"}}`})

		assert.Equal(t, []string{"A", "Z"}, jsonld.Titles(docs))
	})

	t.Run("ignores non-string and blank values", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"headline":42,"name":"   ","alternativeHeadline":"Alt"}`})

		assert.Equal(t, []string{"Alt"}, jsonld.Titles(docs))
	})
}

func TestSiteNames(t *testing.T) {
	t.Parallel()

	t.Run("collects WebSite name", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"WebSite","name":"B"}`})

		assert.Equal(t, []string{"B"}, jsonld.SiteNames(docs))
	})

	t.Run("ignores names of other types", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"Article","name":"Not a site"}`})

		assert.Empty(t, jsonld.SiteNames(docs))
	})

	t.Run("matches WebSite inside @type array", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":["Thing","WebSite"],"name":"S"}`})

		assert.Equal(t, []string{"S"}, jsonld.SiteNames(docs))
	})

	t.Run("collects publisher name", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"NewsArticle","publisher":{"@type":"Organization","name":"Daily"}}`})

		assert.Equal(t, []string{"Daily"}, jsonld.SiteNames(docs))
	})

	t.Run("finds WebSite inside @graph", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@graph":[{"@type":"WebPage","name":"Page"},{"@type":"WebSite","name":"Site"}]}`})

		assert.Equal(t, []string{"Site"}, jsonld.SiteNames(docs))
	})
}

func TestDescriptions(t *testing.T) {
	t.Parallel()

	docs := jsonld.Parse([]string{`{"abstract":"Abs","description":"Desc","about":{"description":"Nested"}}`})

	assert.Equal(t, []string{"Desc", "Abs", "Nested"}, jsonld.Descriptions(docs))
}

func TestAuthors(t *testing.T) {
	t.Parallel()

	t.Run("collects string author", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":"Jane Doe"}`})

		assert.Equal(t, []string{"Jane Doe"}, jsonld.Authors(docs))
	})

	t.Run("skips URL-looking strings", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":"https://example.com/about/jane"}`})

		assert.Empty(t, jsonld.Authors(docs))
	})

	t.Run("prefers object name", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":{"@type":"Person","name":"Jane","givenName":"J","familyName":"D"}}`})

		assert.Equal(t, []string{"Jane"}, jsonld.Authors(docs))
	})

	t.Run("joins given and family names", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":{"givenName":" Ada ","familyName":"Lovelace"}}`})

		assert.Equal(t, []string{"Ada Lovelace"}, jsonld.Authors(docs))
	})

	t.Run("uses family name alone", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":{"familyName":"Lovelace"}}`})

		assert.Equal(t, []string{"Lovelace"}, jsonld.Authors(docs))
	})

	t.Run("collects every author of an array and creator", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"author":[{"name":"A"},"B"],"creator":"C"}`})

		assert.Equal(t, []string{"A", "B", "C"}, jsonld.Authors(docs))
	})

	t.Run("collects authors from @graph", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@graph":[{"@type":"Article","author":{"name":"G"}}]}`})

		assert.Equal(t, []string{"G"}, jsonld.Authors(docs))
	})
}

func TestPrimaryImages(t *testing.T) {
	t.Parallel()

	t.Run("collects primaryImageOfPage of WebPage", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"WebPage","primaryImageOfPage":{"@type":"ImageObject","contentUrl":"/a.png","url":"/b.png"}}`})

		assert.Equal(t, []string{"/a.png"}, jsonld.PrimaryImages(docs))
	})

	t.Run("ignores primaryImageOfPage on other types", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"Article","primaryImageOfPage":"/a.png"}`})

		assert.Empty(t, jsonld.PrimaryImages(docs))
	})

	t.Run("requires exact WebPage type", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":"WebPageElement","primaryImageOfPage":"/a.png"}`})

		assert.Empty(t, jsonld.PrimaryImages(docs))
	})

	t.Run("accepts WebPage inside @type array", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"@type":["WebPage","ItemPage"],"primaryImageOfPage":"/p.png"}`})

		assert.Equal(t, []string{"/p.png"}, jsonld.PrimaryImages(docs))
	})
}

func TestImages(t *testing.T) {
	t.Parallel()

	t.Run("moves representativeOfPage image to the front", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{
			`{"image":"https://example.com/first.png"}`,
			`{"image":{"url":"https://example.com/second.png","representativeOfPage":true}}`,
		})

		assert.Equal(t, []string{"https://example.com/second.png", "https://example.com/first.png"}, jsonld.Images(docs))
	})

	t.Run("falls back to url when contentUrl is absent", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"image":{"url":"/u.png"}}`})

		assert.Equal(t, []string{"/u.png"}, jsonld.Images(docs))
	})

	t.Run("collects every entry of an image array", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{`{"image":["/a.png",{"contentUrl":"/b.png"}]}`})

		assert.Equal(t, []string{"/a.png", "/b.png"}, jsonld.Images(docs))
	})

	t.Run("ignores representativeOfPage false", func(t *testing.T) {
		t.Parallel()

		docs := jsonld.Parse([]string{
			`{"image":"/a.png"}`,
			`{"image":{"url":"/b.png","representativeOfPage":false}}`,
		})

		assert.Equal(t, []string{"/a.png", "/b.png"}, jsonld.Images(docs))
	})
}
