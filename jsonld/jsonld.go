// Package jsonld collects candidate values from schema.org JSON-LD blocks.
//
// Each walk is a recursive descent over decoded JSON values. On an object the
// field's rule collects candidates first, then the walk descends into any
// keys the rule visits explicitly, then into "@graph", then into every
// remaining member in sorted key order. Arrays are walked element by element.
package jsonld

import (
	"encoding/json"
	"slices"
	"strings"
)

// Parse decodes every block independently. Blocks that are not valid JSON
// are skipped.
func Parse(blocks []string) []any {
	docs := make([]any, 0, len(blocks))
	for _, raw := range blocks {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			continue
		}
		docs = append(docs, v)
	}
	return docs
}

// candidates is an ordered candidate list.
type candidates []string

func (c *candidates) push(s string) {
	if s = strings.TrimSpace(s); s != "" {
		*c = append(*c, s)
	}
}

// prepend inserts vals, in order, ahead of everything collected so far.
func (c *candidates) prepend(vals []string) {
	*c = append(slices.Clone(vals), *c...)
}

// rule describes what one field collects from a single object.
type rule struct {
	collect func(obj map[string]any, out *candidates)

	// descend lists keys walked right after collect. They are skipped in
	// the trailing pass over remaining members.
	descend []string
}

func (r rule) walk(v any, out *candidates) {
	switch v := v.(type) {
	case map[string]any:
		r.collect(v, out)
		for _, k := range r.descend {
			if child, ok := v[k]; ok {
				r.walk(child, out)
			}
		}
		if g, ok := v["@graph"]; ok {
			r.walk(g, out)
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			if k == "@graph" || slices.Contains(r.descend, k) {
				continue
			}
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			r.walk(v[k], out)
		}
	case []any:
		for _, item := range v {
			r.walk(item, out)
		}
	}
}

func (r rule) run(docs []any) []string {
	var out candidates
	for _, d := range docs {
		r.walk(d, &out)
	}
	return out
}

// Titles returns headline, name and alternativeHeadline candidates.
func Titles(docs []any) []string {
	return titleRule.run(docs)
}

// SiteNames returns the names of WebSite objects and of publishers.
func SiteNames(docs []any) []string {
	return siteNameRule.run(docs)
}

// Descriptions returns description and abstract candidates.
func Descriptions(docs []any) []string {
	return descriptionRule.run(docs)
}

// Authors returns every author and creator name, in discovery order.
// String values that look like http(s) URLs are skipped.
func Authors(docs []any) []string {
	return authorRule.run(docs)
}

// PrimaryImages returns primaryImageOfPage URLs of WebPage objects.
func PrimaryImages(docs []any) []string {
	return primaryImageRule.run(docs)
}

// Images returns image URLs. Images marked representativeOfPage are moved
// to the front of the list.
func Images(docs []any) []string {
	return imageRule.run(docs)
}

var titleRule = rule{collect: func(obj map[string]any, out *candidates) {
	for _, key := range []string{"headline", "name", "alternativeHeadline"} {
		if s, ok := obj[key].(string); ok {
			out.push(s)
		}
	}
}}

var siteNameRule = rule{
	collect: func(obj map[string]any, out *candidates) {
		if typeContains(obj, "WebSite") {
			if s, ok := obj["name"].(string); ok {
				out.push(s)
			}
		}
		if pub, ok := obj["publisher"].(map[string]any); ok {
			if s, ok := pub["name"].(string); ok {
				out.push(s)
			}
		}
	},
	descend: []string{"publisher"},
}

var descriptionRule = rule{collect: func(obj map[string]any, out *candidates) {
	for _, key := range []string{"description", "abstract"} {
		if s, ok := obj[key].(string); ok {
			out.push(s)
		}
	}
}}

var authorRule = rule{collect: func(obj map[string]any, out *candidates) {
	for _, key := range []string{"author", "creator"} {
		if v, ok := obj[key]; ok {
			authorNames(v, out)
		}
	}
}}

var primaryImageRule = rule{collect: func(obj map[string]any, out *candidates) {
	if hasType(obj, "WebPage") {
		if v, ok := obj["primaryImageOfPage"]; ok {
			imageURLs(v, out)
		}
	}
}}

var imageRule = rule{collect: func(obj map[string]any, out *candidates) {
	v, ok := obj["image"]
	if !ok {
		return
	}
	if img, ok := v.(map[string]any); ok && img["representativeOfPage"] == true {
		var preferred candidates
		imageURLs(v, &preferred)
		out.prepend(preferred)
		return
	}
	imageURLs(v, out)
}}

func authorNames(v any, out *candidates) {
	switch v := v.(type) {
	case string:
		if !looksLikeURL(v) {
			out.push(v)
		}
	case map[string]any:
		if s, ok := v["name"].(string); ok && strings.TrimSpace(s) != "" {
			out.push(s)
			return
		}
		given, _ := v["givenName"].(string)
		family, _ := v["familyName"].(string)
		parts := make([]string, 0, 2)
		for _, p := range []string{given, family} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		out.push(strings.Join(parts, " "))
	case []any:
		for _, item := range v {
			authorNames(item, out)
		}
	}
}

func imageURLs(v any, out *candidates) {
	switch v := v.(type) {
	case string:
		out.push(v)
	case map[string]any:
		if s, ok := v["contentUrl"].(string); ok && strings.TrimSpace(s) != "" {
			out.push(s)
		} else if s, ok := v["url"].(string); ok {
			out.push(s)
		}
	case []any:
		for _, item := range v {
			imageURLs(item, out)
		}
	}
}

// hasType reports whether @type equals t or is an array holding t.
func hasType(obj map[string]any, t string) bool {
	switch v := obj["@type"].(type) {
	case string:
		return v == t
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == t {
				return true
			}
		}
	}
	return false
}

// typeContains reports whether @type, or any entry of an @type array,
// contains t as a substring.
func typeContains(obj map[string]any, t string) bool {
	switch v := obj["@type"].(type) {
	case string:
		return strings.Contains(v, t)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, t) {
				return true
			}
		}
	}
	return false
}

func looksLikeURL(s string) bool {
	ls := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(ls, "http://") || strings.HasPrefix(ls, "https://")
}
