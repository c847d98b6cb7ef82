package goquery

import "github.com/fwojciec/spy/jsonld"

var siteStrategies = []textStrategy{
	selectAttr(`head meta[property="og:site_name"]`, "content"),
	manifestField("name", "short_name"),
	firstOf(
		structuredText(jsonld.SiteNames),
		contentOrText(`[itemscope][itemtype*="schema.org/WebSite"] [itemprop="name"]`),
		contentOrText(`[itemscope][itemtype*="schema.org/Organization"] [itemprop="name"]`),
		contentOrText(`[property="schema:name"]`),
	),
	firstOf(
		selectText(".h-card .p-name"),
		selectText(".p-name"),
	),
	selectAttr(`head meta[name="application-name"]`, "content"),
	pageHost,
}

// pageHost yields the host of the page URL, without port.
func pageHost(p *page) (string, bool) {
	if p.base == nil {
		return "", false
	}
	h := p.base.Hostname()
	return h, h != ""
}
