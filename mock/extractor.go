package mock

import (
	"net/url"

	"github.com/fwojciec/spy"
)

var _ spy.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of spy.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL *url.URL) (*spy.ExtractResult, error)
}

func (e *Extractor) Extract(html string, pageURL *url.URL) (*spy.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
