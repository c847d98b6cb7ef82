package spy

import (
	"context"
	"time"
)

// Bookmark is a stored Entry with its tags.
type Bookmark struct {
	Entry       *Entry    `json:"entry"`
	Tags        []Tag     `json:"tags"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.Entry == nil {
		return Errorf(EINVALID, "bookmark entry required")
	}
	if b.Entry.URL() == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	return nil
}

// BookmarkService represents a service for managing bookmarks.
type BookmarkService interface {
	// CreateBookmark stores a new bookmark.
	// Returns ECONFLICT if a bookmark for the same URL exists.
	CreateBookmark(ctx context.Context, bookmark *Bookmark) error

	// ReplaceBookmark atomically stores bookmark in place of any bookmark
	// for the same URL. If it fails, the existing bookmark is unchanged.
	ReplaceBookmark(ctx context.Context, bookmark *Bookmark) error

	// FindBookmarkByID retrieves a bookmark by its entry ID.
	// Returns ENOTFOUND if bookmark does not exist.
	FindBookmarkByID(ctx context.Context, id string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter, newest first.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// DeleteBookmark permanently removes a bookmark and its tags.
	// Returns ENOTFOUND if bookmark does not exist.
	DeleteBookmark(ctx context.Context, id string) error
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	URL *string `json:"url"`
	Tag *Tag    `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryStore persists rendered entries with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type EntryStore interface {
	Save(ctx context.Context, entry *Entry, content string) error
	Commit() error
	Abort() error
}
