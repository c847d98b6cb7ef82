package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spy/jsonld"
)

// Every thumbnail candidate passes through absolutization. A candidate that
// cannot be absolutized is a miss and resolution moves on.
var thumbnailStrategies = []textStrategy{
	metaImage(
		`head meta[property="og:image:secure_url"]`,
		`head meta[property="og:image:url"]`,
		`head meta[property="og:image"]`,
	),
	metaImage(
		`head meta[name="twitter:image"]`,
		`head meta[name="twitter:image:src"]`,
	),
	structuredImage(jsonld.PrimaryImages),
	attrImage(`[itemprop="primaryImageOfPage"]`, `[property="schema:primaryImageOfPage"]`),
	structuredImage(jsonld.Images),
	attrImage(`[itemprop="image"]`, `[property="schema:image"]`),
	attrImage(".h-entry .u-featured", ".u-featured", ".h-entry .u-photo", ".u-photo"),
	oembedThumbnail,
	ampStoryPoster,
	// Non-standard; last resort.
	relImageSrc,
}

// metaImage tries the content of each selector in turn.
func metaImage(selectors ...string) textStrategy {
	return func(p *page) (string, bool) {
		for _, css := range selectors {
			if v, ok := p.doc.FirstAttr(css, "content"); ok {
				if abs, ok := p.absolutize(v); ok {
					return abs, true
				}
			}
		}
		return "", false
	}
}

func structuredImage(collect func([]any) []string) textStrategy {
	return func(p *page) (string, bool) {
		for _, c := range collect(p.structuredData()) {
			if abs, ok := p.absolutize(c); ok {
				return abs, true
			}
		}
		return "", false
	}
}

// urlAttrs are the attributes an annotated image element may carry its
// URL in, in order of preference.
var urlAttrs = []string{"content", "src", "href", "data-src"}

// attrImage takes, for each selector in turn, the first matching element
// that carries a URL in any of urlAttrs.
func attrImage(selectors ...string) textStrategy {
	return func(p *page) (string, bool) {
		for _, css := range selectors {
			v, ok := urlFromAnyAttr(p.doc.Find(css))
			if !ok {
				continue
			}
			if abs, ok := p.absolutize(v); ok {
				return abs, true
			}
		}
		return "", false
	}
}

func urlFromAnyAttr(sel *goquery.Selection) (string, bool) {
	var out string
	sel.EachWithBreak(func(_ int, el *goquery.Selection) bool {
		for _, attr := range urlAttrs {
			if v := trimmedAttr(el, attr); v != "" {
				out = v
				return false
			}
		}
		return true
	})
	return out, out != ""
}

// ampStoryPoster reads the poster attributes of the first amp-story.
func ampStoryPoster(p *page) (string, bool) {
	story := p.doc.Find("amp-story").First()
	for _, attr := range []string{"poster-portrait-src", "poster-landscape-src", "poster-square-src"} {
		if v, ok := story.Attr(attr); ok {
			if abs, ok := p.absolutize(v); ok {
				return abs, true
			}
		}
	}
	return "", false
}

func relImageSrc(p *page) (string, bool) {
	var out string
	p.doc.Find(`link[rel="image_src"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if href, ok := sel.Attr("href"); ok {
			out, _ = p.absolutize(href)
		}
		return out == ""
	})
	return out, out != ""
}
