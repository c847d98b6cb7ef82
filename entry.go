package spy

import (
	"encoding/json"
	"net/url"
	"slices"

	"github.com/google/uuid"
)

// AuthorSet is a set of normalized author names.
// Membership is exact string equality after normalization.
type AuthorSet map[string]struct{}

// NewAuthorSet returns a set holding the normalized, non-empty names.
func NewAuthorSet(names ...string) AuthorSet {
	s := make(AuthorSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add normalizes name and adds it to the set. Absent names are ignored.
func (s AuthorSet) Add(name string) {
	if n := Normalize(name); n != "" {
		s[n] = struct{}{}
	}
}

// Has reports whether the normalized name is a member.
func (s AuthorSet) Has(name string) bool {
	_, ok := s[Normalize(name)]
	return ok
}

// Len returns the number of distinct names.
func (s AuthorSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order.
func (s AuthorSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Primary returns the lexicographically smallest name, or "" for an empty set.
// This is deliberately not the byline order of the page.
func (s AuthorSet) Primary() string {
	var primary string
	for n := range s {
		if primary == "" || n < primary {
			primary = n
		}
	}
	return primary
}

// Metadata holds the resolved bibliographic fields of a page.
// Empty strings mean the field was not found.
type Metadata struct {
	Title       string
	SiteName    string
	Authors     AuthorSet
	Description string
	Thumbnail   string
}

// EntryParams holds the values an Entry is built from.
type EntryParams struct {
	URL      *url.URL
	Metadata Metadata
	FullText string
}

// Entry is a single bookmark entry. It is immutable once built.
type Entry struct {
	id          uuid.UUID
	url         *url.URL
	pageTitle   string
	siteTitle   string
	authors     AuthorSet
	fullText    string
	description string
	thumbnail   string
}

// NewEntry builds an Entry from params and assigns it a fresh identifier.
func NewEntry(params EntryParams) *Entry {
	e := &Entry{
		id:          uuid.New(),
		pageTitle:   Normalize(params.Metadata.Title),
		siteTitle:   Normalize(params.Metadata.SiteName),
		authors:     NewAuthorSet(),
		fullText:    params.FullText,
		description: Normalize(params.Metadata.Description),
		thumbnail:   params.Metadata.Thumbnail,
	}
	if params.URL != nil {
		u := *params.URL
		e.url = &u
	}
	for n := range params.Metadata.Authors {
		e.authors.Add(n)
	}
	return e
}

// RestoreEntry rebuilds a stored Entry from its record, keeping its identifier.
func RestoreEntry(rec EntryRecord) (*Entry, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid entry id %q", rec.ID)
	}
	u, err := ParsePageURL(rec.URL)
	if err != nil {
		return nil, err
	}
	e := &Entry{
		id:          id,
		url:         u,
		pageTitle:   rec.PageTitle,
		siteTitle:   rec.SiteTitle,
		authors:     NewAuthorSet(rec.Authors...),
		fullText:    rec.FullText,
		description: rec.Description,
		thumbnail:   rec.Thumbnail,
	}
	return e, nil
}

// ID returns the entry identifier.
func (e *Entry) ID() string { return e.id.String() }

// URL returns the source URL of the entry.
func (e *Entry) URL() string {
	if e.url == nil {
		return ""
	}
	return e.url.String()
}

// PageTitle returns the page title, or "" when none was found.
func (e *Entry) PageTitle() string { return e.pageTitle }

// SiteTitle returns the site name.
func (e *Entry) SiteTitle() string { return e.siteTitle }

// Authors returns the author names in lexicographic order.
func (e *Entry) Authors() []string { return e.authors.Sorted() }

// Author returns the primary author, the lexicographically smallest name.
func (e *Entry) Author() string { return e.authors.Primary() }

// FullText returns the extracted body text.
func (e *Entry) FullText() string { return e.fullText }

// Description returns the description and whether one was found.
func (e *Entry) Description() (string, bool) { return e.description, e.description != "" }

// Thumbnail returns the absolute thumbnail URL and whether one was found.
func (e *Entry) Thumbnail() (string, bool) { return e.thumbnail, e.thumbnail != "" }

// EntryRecord is the full internal serialized shape of an Entry.
type EntryRecord struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	PageTitle   string   `json:"page_title"`
	SiteTitle   string   `json:"site_title"`
	Authors     []string `json:"authors"`
	FullText    string   `json:"full_text"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// Record returns the internal serialized shape of e.
func (e *Entry) Record() EntryRecord {
	return EntryRecord{
		ID:          e.ID(),
		URL:         e.URL(),
		PageTitle:   e.pageTitle,
		SiteTitle:   e.siteTitle,
		Authors:     e.authors.Sorted(),
		FullText:    e.fullText,
		Description: e.description,
		Thumbnail:   e.thumbnail,
	}
}

// EntryView is the output shape consumed by templates and JSON output.
type EntryView struct {
	Title       string   `json:"title"`
	Site        string   `json:"site"`
	Author      string   `json:"author,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	URL         string   `json:"url"`
	ID          string   `json:"id"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	FullText    string   `json:"full_text"`
}

// View returns the output shape of e.
func (e *Entry) View() EntryView {
	authors := e.authors.Sorted()
	var author string
	if len(authors) > 0 {
		author = authors[0]
	}
	return EntryView{
		Title:       e.pageTitle,
		Site:        e.siteTitle,
		Author:      author,
		Authors:     authors,
		URL:         e.URL(),
		ID:          e.ID(),
		Description: e.description,
		Thumbnail:   e.thumbnail,
		FullText:    e.fullText,
	}
}

// MarshalJSON encodes the entry as its view.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.View())
}

// TemplateContext returns the view's keys flattened at the top level plus an
// "entry" key holding the full internal record.
func (e *Entry) TemplateContext() (map[string]any, error) {
	ctx, err := toMap(e.View())
	if err != nil {
		return nil, err
	}
	rec, err := toMap(e.Record())
	if err != nil {
		return nil, err
	}
	ctx["entry"] = rec
	return ctx, nil
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
