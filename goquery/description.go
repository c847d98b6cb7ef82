package goquery

import "github.com/fwojciec/spy/jsonld"

var descriptionStrategies = []textStrategy{
	metaNamed("description"),
	selectAttr(`head meta[property="og:description"]`, "content"),
	selectAttr(`head meta[name="twitter:description"]`, "content"),
	structuredText(jsonld.Descriptions),
	firstOf(
		contentOrText(`[itemprop="description"]`),
		contentOrText(`[itemprop="abstract"]`),
		contentOrText(`[property="schema:description"]`),
	),
	firstOf(
		selectText(".h-entry .p-summary"),
		selectText(".p-summary"),
	),
	metaNamed("dc.description", "dcterms.description", "dcterms.abstract"),
	manifestField("description"),
}
