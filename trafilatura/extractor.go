// Package trafilatura extracts article body text with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/spy"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements spy.Extractor at compile time.
var _ spy.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML fetched from pageURL and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL *url.URL) (*spy.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, spy.Errorf(spy.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		OriginalURL:    pageURL,
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "trafilatura extraction failed")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, spy.WrapError(spy.EINTERNAL, err, "failed to render content")
		}
	}

	return &spy.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Text:        result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
