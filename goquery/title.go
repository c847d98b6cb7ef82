package goquery

import "github.com/fwojciec/spy/jsonld"

var titleStrategies = []textStrategy{
	selectText("head > title"),
	selectAttr(`head meta[property="og:title"]`, "content"),
	selectAttr(`head meta[name="twitter:title"]`, "content"),
	structuredText(jsonld.Titles),
	// Microdata
	firstOf(
		contentOrText(`[itemprop="headline"]`),
		contentOrText(`[itemprop="name"]`),
	),
	// microformats2
	firstOf(
		selectText(".h-entry .p-name"),
		selectText(".p-name"),
		selectText(".h-entry .entry-title"),
	),
	// RDFa
	firstOf(
		contentOrText(`[property="schema:headline"]`),
		contentOrText(`[property="schema:name"]`),
		contentOrText(`[property="dcterms:title"]`),
	),
	metaNamed("dc.title", "dcterms.title"),
}
