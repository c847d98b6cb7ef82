package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spy"
)

// manifestField fetches the web app manifest linked from the page and
// yields the first of keys holding a non-empty string. The manifest is
// fetched anew on every call.
func manifestField(keys ...string) textStrategy {
	return func(p *page) (string, bool) {
		href, ok := firstHref(p.doc.Find(`link[rel~="manifest"]`))
		if !ok {
			return "", false
		}
		manifest, ok := p.fetchJSON(href)
		if !ok {
			return "", false
		}
		for _, k := range keys {
			if s, ok := manifest[k].(string); ok {
				if s = spy.Normalize(s); s != "" {
					return s, true
				}
			}
		}
		return "", false
	}
}

// oembedContentType is the only oEmbed descriptor format followed.
const oembedContentType = "application/json+oembed"

// oembedThumbnail follows the first JSON oEmbed link and yields its
// thumbnail_url, else its url (set for photo embeds).
func oembedThumbnail(p *page) (string, bool) {
	var href string
	var found bool
	p.doc.Find(`link[rel~="alternate"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if t, _ := sel.Attr("type"); !strings.EqualFold(strings.TrimSpace(t), oembedContentType) {
			return true
		}
		href, found = sel.Attr("href")
		return !found
	})
	if !found {
		return "", false
	}
	oembed, ok := p.fetchJSON(href)
	if !ok {
		return "", false
	}
	for _, k := range []string{"thumbnail_url", "url"} {
		if s, ok := oembed[k].(string); ok {
			return p.absolutize(s)
		}
	}
	return "", false
}

// fetchJSON fetches href, resolved against the page URL, and decodes it as
// a JSON object. Every failure is a miss.
func (p *page) fetchJSON(href string) (map[string]any, bool) {
	if p.fetcher == nil {
		return nil, false
	}
	target, ok := p.absolutize(href)
	if !ok {
		return nil, false
	}
	body, err := p.fetcher.Fetch(p.ctx, target)
	if err != nil {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// firstHref returns the href of the first element in sel that has one.
func firstHref(sel *goquery.Selection) (string, bool) {
	var href string
	var found bool
	sel.EachWithBreak(func(_ int, el *goquery.Selection) bool {
		href, found = el.Attr("href")
		return !found
	})
	return href, found
}

func trimmedAttr(sel *goquery.Selection, attr string) string {
	v, _ := sel.Attr(attr)
	return strings.TrimSpace(v)
}
