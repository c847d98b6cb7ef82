package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/spy"
)

// Document answers selector queries against a parsed HTML page.
// Selectors that fail to compile match nothing.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses html. A page the parser cannot read behaves like an
// empty document.
func NewDocument(html string) *Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc}
}

// Find returns every element matching css.
func (d *Document) Find(css string) *goquery.Selection {
	return find(d.doc.Selection, css)
}

// FirstText returns the normalized text of the first element matching css.
// Only the first match is considered.
func (d *Document) FirstText(css string) (string, bool) {
	return FirstTextIn(d.doc.Selection, css)
}

// FirstAttr returns the first non-empty normalized value of attr across all
// elements matching css.
func (d *Document) FirstAttr(css, attr string) (string, bool) {
	return FirstAttrIn(d.doc.Selection, css, attr)
}

// AllAttrs returns every distinct non-empty normalized value of attr across
// all elements matching css, in document order.
func (d *Document) AllAttrs(css, attr string) []string {
	return AllAttrsIn(d.doc.Selection, css, attr)
}

// FirstTextIn is FirstText scoped to the descendants of scope.
func FirstTextIn(scope *goquery.Selection, css string) (string, bool) {
	s := spy.Normalize(find(scope, css).First().Text())
	return s, s != ""
}

// FirstAttrIn is FirstAttr scoped to the descendants of scope.
func FirstAttrIn(scope *goquery.Selection, css, attr string) (string, bool) {
	var out string
	find(scope, css).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr(attr); ok {
			out = spy.Normalize(v)
		}
		return out == ""
	})
	return out, out != ""
}

// AllAttrsIn is AllAttrs scoped to the descendants of scope.
func AllAttrsIn(scope *goquery.Selection, css, attr string) []string {
	var out []string
	seen := make(map[string]bool)
	find(scope, css).Each(func(_ int, sel *goquery.Selection) {
		v, ok := sel.Attr(attr)
		if !ok {
			return
		}
		if v = spy.Normalize(v); v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	})
	return out
}

// Text returns the normalized text content of sel.
func Text(sel *goquery.Selection) string {
	return spy.Normalize(sel.Text())
}

func find(scope *goquery.Selection, css string) *goquery.Selection {
	m, err := cascadia.Compile(css)
	if err != nil {
		return scope.FindNodes()
	}
	return scope.FindMatcher(m)
}
