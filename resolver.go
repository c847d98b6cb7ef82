package spy

import (
	"context"
	"net/url"
)

// MetadataRequest describes a page whose metadata should be resolved.
type MetadataRequest struct {
	// HTML is the raw page source.
	HTML string

	// URL is the absolute page URL, the base for relative URLs.
	URL *url.URL

	// Title, when non-empty, overrides the title resolution entirely.
	Title string
}

// MetadataResolver resolves bibliographic fields from a page.
type MetadataResolver interface {
	// Resolve runs every field's fallback chain against the page.
	// A missing or malformed standard is never an error: the field is left
	// empty and resolution moves on to the next strategy.
	Resolve(ctx context.Context, req MetadataRequest) *Metadata
}

// BuildOptions configures a single extraction.
type BuildOptions struct {
	// Title, when non-empty, is used as the page title verbatim.
	Title string
}

// EntryBuilder fetches a page and builds an Entry from it.
type EntryBuilder interface {
	// BuildEntry fetches rawURL and resolves its metadata.
	// Returns EINVALID for a malformed URL, EFETCH when the page cannot be
	// fetched and EDECODE when its body cannot be read as text.
	BuildEntry(ctx context.Context, rawURL string, opts BuildOptions) (*Entry, error)
}

// EntryRenderer turns an Entry into user-facing text.
type EntryRenderer interface {
	Render(entry *Entry) (string, error)
}
