// Package goquery resolves page metadata from HTML using goquery selectors.
//
// Every field is resolved by a declared, ordered list of strategies drawn
// from the metadata standards a page may carry (head title, OpenGraph,
// Twitter Cards, JSON-LD, Microdata, RDFa, microformats2, Dublin Core, web
// app manifests and oEmbed). Strategies are evaluated left to right and the
// first success wins.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/jsonld"
)

// Ensure Resolver implements spy.MetadataResolver.
var _ spy.MetadataResolver = (*Resolver)(nil)

// Resolver resolves bibliographic metadata from an HTML page.
type Resolver struct {
	// Fetcher retrieves secondary resources (manifest, oEmbed).
	// When nil, strategies that need a secondary fetch always miss.
	Fetcher spy.Fetcher
}

// NewResolver creates a Resolver that uses fetcher for secondary resources.
func NewResolver(fetcher spy.Fetcher) *Resolver {
	return &Resolver{Fetcher: fetcher}
}

// Resolve runs the title, site name, author, description and thumbnail
// chains against the page. It never fails: a field no strategy can resolve
// is left empty, except the site name which falls back to the page host.
func (r *Resolver) Resolve(ctx context.Context, req spy.MetadataRequest) *spy.Metadata {
	p := &page{
		ctx:     ctx,
		doc:     NewDocument(req.HTML),
		base:    req.URL,
		fetcher: r.Fetcher,
	}

	title := spy.Normalize(req.Title)
	if title == "" {
		title, _ = resolveText(p, titleStrategies)
	}
	site, _ := resolveText(p, siteStrategies)
	description, _ := resolveText(p, descriptionStrategies)
	thumbnail, _ := resolveText(p, thumbnailStrategies)

	return &spy.Metadata{
		Title:       title,
		SiteName:    site,
		Authors:     resolveAuthors(p, authorStrategies),
		Description: description,
		Thumbnail:   thumbnail,
	}
}

// page is the state shared by the strategies of one resolution.
type page struct {
	// ctx bounds secondary fetches made while resolving this page.
	ctx     context.Context
	doc     *Document
	base    *url.URL
	fetcher spy.Fetcher

	structured []any
	parsed     bool
}

// structuredData returns the page's JSON-LD blocks, parsed on first use.
func (p *page) structuredData() []any {
	if !p.parsed {
		var blocks []string
		p.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
			blocks = append(blocks, sel.Text())
		})
		p.structured = jsonld.Parse(blocks)
		p.parsed = true
	}
	return p.structured
}

// absolutize resolves candidate against the page URL.
func (p *page) absolutize(candidate string) (string, bool) {
	return spy.Absolutize(p.base, candidate)
}

// textStrategy yields a normalized scalar value, or false on a miss.
// Image strategies share the type and yield absolutized URLs.
type textStrategy func(p *page) (string, bool)

// authorStrategy yields a set of names; an empty set is a miss.
type authorStrategy func(p *page) spy.AuthorSet

func resolveText(p *page, strategies []textStrategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(p); ok {
			return v, true
		}
	}
	return "", false
}

func resolveAuthors(p *page, strategies []authorStrategy) spy.AuthorSet {
	for _, s := range strategies {
		if set := s(p); set.Len() > 0 {
			return set
		}
	}
	return spy.NewAuthorSet()
}

// firstOf groups strategies of one standard into a single strategy.
func firstOf(strategies ...textStrategy) textStrategy {
	return func(p *page) (string, bool) {
		return resolveText(p, strategies)
	}
}

// selectText yields the text of the first element matching css.
func selectText(css string) textStrategy {
	return func(p *page) (string, bool) {
		return p.doc.FirstText(css)
	}
}

// selectAttr yields the first non-empty attr of the elements matching css.
func selectAttr(css, attr string) textStrategy {
	return func(p *page) (string, bool) {
		return p.doc.FirstAttr(css, attr)
	}
}

// contentOrText yields the content attribute of css, else its text.
func contentOrText(css string) textStrategy {
	return firstOf(selectAttr(css, "content"), selectText(css))
}

// metaNamed yields the content of the first head meta whose name matches
// one of names, compared case-insensitively.
func metaNamed(names ...string) textStrategy {
	return func(p *page) (string, bool) {
		vals := metaContents(p.doc, names)
		if len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}
}

// structuredText yields the first JSON-LD candidate returned by collect.
func structuredText(collect func([]any) []string) textStrategy {
	return func(p *page) (string, bool) {
		for _, c := range collect(p.structuredData()) {
			if s := spy.Normalize(c); s != "" {
				return s, true
			}
		}
		return "", false
	}
}

// metaContents returns the non-empty content values of head meta elements
// whose name matches one of names case-insensitively, in document order.
func metaContents(doc *Document, names []string) []string {
	var out []string
	doc.Find("head meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || !equalFoldAny(name, names) {
			return
		}
		if v, ok := sel.Attr("content"); ok {
			if v = spy.Normalize(v); v != "" {
				out = append(out, v)
			}
		}
	})
	return out
}

func equalFoldAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
