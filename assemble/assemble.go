// Package assemble builds Entries: it fetches a page, extracts its body text
// and resolves its metadata.
package assemble

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/spy"
)

// Ensure Assembler implements spy.EntryBuilder.
var _ spy.EntryBuilder = (*Assembler)(nil)

// Assembler orchestrates a single extraction.
type Assembler struct {
	Fetcher   spy.Fetcher
	Extractor spy.Extractor
	Resolver  spy.MetadataResolver

	// Converter, when set, renders full_text as Markdown from the
	// extracted content HTML.
	Converter spy.Converter
}

// NewAssembler creates an Assembler.
func NewAssembler(fetcher spy.Fetcher, extractor spy.Extractor, resolver spy.MetadataResolver) *Assembler {
	return &Assembler{
		Fetcher:   fetcher,
		Extractor: extractor,
		Resolver:  resolver,
	}
}

// BuildEntry fetches rawURL and builds an Entry from it. Only the primary
// fetch can fail the build; a failed content extraction leaves full_text
// empty.
func (a *Assembler) BuildEntry(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
	u, err := spy.ParsePageURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, err := a.Fetcher.Fetch(ctx, u.String())
	if err != nil {
		if spy.ErrorCode(err) == spy.EDECODE {
			return nil, spy.WrapError(spy.EDECODE, err, "failed to read %s as text", u)
		}
		return nil, spy.WrapError(spy.EFETCH, err, "failed to fetch URL %s", u)
	}

	fullText := a.fullText(body, u)
	md := a.Resolver.Resolve(ctx, spy.MetadataRequest{
		HTML:  body,
		URL:   u,
		Title: opts.Title,
	})

	return spy.NewEntry(spy.EntryParams{
		URL:      u,
		Metadata: *md,
		FullText: fullText,
	}), nil
}

// fullText returns the normalized plain text of the main content, or its
// Markdown rendering when a Converter is set. Any failure yields "".
func (a *Assembler) fullText(body string, u *url.URL) string {
	if a.Extractor == nil {
		return ""
	}
	res, err := a.Extractor.Extract(body, u)
	if err != nil || res == nil {
		return ""
	}
	if a.Converter != nil {
		md, err := a.Converter.Convert(res.ContentHTML)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(md)
	}
	return spy.Normalize(res.Text)
}
