package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/jsonld"
)

// Each author strategy gathers every name its standard offers. Resolution
// stops at the first strategy with a non-empty result.
var authorStrategies = []authorStrategy{
	metaAuthors(`head meta[name="author"]`),
	relAuthors,
	structuredAuthors,
	microdataAuthors,
	rdfaAuthors,
	microformatAuthors,
	metaAuthors(`head meta[property="article:author"]`),
	twitterCreators,
	dublinCoreCreators,
	addressAuthors,
}

func metaAuthors(css string) authorStrategy {
	return func(p *page) spy.AuthorSet {
		return spy.NewAuthorSet(p.doc.AllAttrs(css, "content")...)
	}
}

// relAuthors reads rel="author" anchors and links, falling back to the
// title attribute when an element has no text.
func relAuthors(p *page) spy.AuthorSet {
	set := spy.NewAuthorSet()
	for _, css := range []string{`a[rel~="author"]`, `link[rel~="author"]`} {
		p.doc.Find(css).Each(func(_ int, sel *goquery.Selection) {
			if t := Text(sel); t != "" {
				set.Add(t)
				return
			}
			if title, ok := sel.Attr("title"); ok {
				set.Add(title)
			}
		})
	}
	return set
}

func structuredAuthors(p *page) spy.AuthorSet {
	return spy.NewAuthorSet(jsonld.Authors(p.structuredData())...)
}

// microdataAuthors reads itemprop="author" content and text, plus the
// nested itemprop="name" of author items.
func microdataAuthors(p *page) spy.AuthorSet {
	const css = `[itemprop="author"]`
	set := spy.NewAuthorSet(p.doc.AllAttrs(css, "content")...)
	p.doc.Find(css).Each(func(_ int, sel *goquery.Selection) {
		set.Add(Text(sel))
		for _, name := range AllAttrsIn(sel, `[itemprop="name"]`, "content") {
			set.Add(name)
		}
		find(sel, `[itemprop="name"]`).Each(func(_ int, name *goquery.Selection) {
			set.Add(Text(name))
		})
	})
	return set
}

func rdfaAuthors(p *page) spy.AuthorSet {
	set := spy.NewAuthorSet(p.doc.AllAttrs(`[property="schema:author"]`, "content")...)
	for _, css := range []string{`[property="schema:author"]`, `[property="schema:name"]`} {
		p.doc.Find(css).Each(func(_ int, sel *goquery.Selection) {
			set.Add(Text(sel))
		})
	}
	return set
}

// microformatAuthors adds both the p-name of an author element and the
// element's own text.
func microformatAuthors(p *page) spy.AuthorSet {
	set := spy.NewAuthorSet()
	for _, css := range []string{".h-entry .p-author", ".p-author", ".h-entry .author", ".author.vcard"} {
		p.doc.Find(css).Each(func(_ int, sel *goquery.Selection) {
			if name, ok := FirstTextIn(sel, ".p-name"); ok {
				set.Add(name)
			}
			set.Add(Text(sel))
		})
	}
	return set
}

// twitterCreators strips the leading @ of Twitter handles.
func twitterCreators(p *page) spy.AuthorSet {
	set := spy.NewAuthorSet()
	for _, handle := range p.doc.AllAttrs(`head meta[name="twitter:creator"]`, "content") {
		set.Add(strings.TrimLeft(handle, "@"))
	}
	return set
}

func dublinCoreCreators(p *page) spy.AuthorSet {
	return spy.NewAuthorSet(metaContents(p.doc, []string{"dc.creator", "dcterms.creator"})...)
}

// addressAuthors prefers address elements inside article, then footer,
// then anywhere on the page.
func addressAuthors(p *page) spy.AuthorSet {
	set := spy.NewAuthorSet()
	for _, css := range []string{"article address", "footer address", "address"} {
		p.doc.Find(css).Each(func(_ int, sel *goquery.Selection) {
			set.Add(Text(sel))
		})
		if set.Len() > 0 {
			break
		}
	}
	return set
}
