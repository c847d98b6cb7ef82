package spy

import "net/url"

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title as seen by the extractor.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Text is the plain text of the main content.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the main content.
	Extract(html string, pageURL *url.URL) (*ExtractResult, error)
}
