package spy

import "strings"

// FormatBookmarks formats bookmarks as one line each for listing.
// Uses the page title if available, falls back to the URL.
// Tags, when present, are appended in brackets.
func FormatBookmarks(bookmarks []*Bookmark) string {
	if len(bookmarks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		header := b.Entry.PageTitle()
		if header == "" {
			header = b.Entry.URL()
		}
		line := b.Entry.ID() + "  " + header + "  " + b.Entry.URL()
		if len(b.Tags) > 0 {
			tags := make([]string, len(b.Tags))
			for i, t := range b.Tags {
				tags[i] = string(t)
			}
			line += "  [" + strings.Join(tags, ", ") + "]"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
