// Package readability extracts article body text with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/spy"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements spy.Extractor at compile time.
var _ spy.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML fetched from pageURL and returns the article.
// pageURL is used to resolve relative links inside the content.
func (e *Extractor) Extract(rawHTML string, pageURL *url.URL) (*spy.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, spy.Errorf(spy.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "readability extraction failed")
	}

	return &spy.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        article.TextContent,
	}, nil
}
