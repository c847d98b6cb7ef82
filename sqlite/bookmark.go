package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/spy"
)

// Ensure BookmarkService implements spy.BookmarkService at compile time.
var _ spy.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements spy.BookmarkService using SQLite.
type BookmarkService struct {
	db  *DB
	now func() time.Time
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db, now: time.Now}
}

const bookmarkColumns = `id, url, page_title, site_title, authors, description, thumbnail, full_text, content_hash, created_at`

// CreateBookmark stores a new bookmark and its tags.
func (s *BookmarkService) CreateBookmark(ctx context.Context, bookmark *spy.Bookmark) error {
	return s.store(ctx, bookmark, false)
}

// ReplaceBookmark stores bookmark, removing any bookmark for the same URL in
// the same transaction. On failure the previous bookmark is kept.
func (s *BookmarkService) ReplaceBookmark(ctx context.Context, bookmark *spy.Bookmark) error {
	return s.store(ctx, bookmark, true)
}

func (s *BookmarkService) store(ctx context.Context, bookmark *spy.Bookmark, replace bool) error {
	if err := bookmark.Validate(); err != nil {
		return err
	}

	rec := bookmark.Entry.Record()
	authors, err := json.Marshal(rec.Authors)
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to encode authors")
	}

	bookmark.ContentHash = hashContent(rec.FullText)
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = s.now()
	}
	bookmark.CreatedAt = bookmark.CreatedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE url = ?`, rec.URL); err != nil {
			return spy.WrapError(spy.EINTERNAL, err, "failed to remove existing bookmark")
		}
	} else {
		var existing string
		err = tx.QueryRowContext(ctx, `SELECT id FROM bookmarks WHERE url = ?`, rec.URL).Scan(&existing)
		switch {
		case err == nil:
			return spy.Errorf(spy.ECONFLICT, "bookmark for %s already exists", rec.URL)
		case !errors.Is(err, sql.ErrNoRows):
			return spy.WrapError(spy.EINTERNAL, err, "failed to check existing bookmark")
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookmarks (`+bookmarkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.URL,
		rec.PageTitle,
		rec.SiteTitle,
		string(authors),
		rec.Description,
		rec.Thumbnail,
		rec.FullText,
		bookmark.ContentHash,
		bookmark.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to insert bookmark")
	}

	for _, tag := range bookmark.Tags {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO bookmark_tags (bookmark_id, tag) VALUES (?, ?)`,
			rec.ID, string(tag))
		if err != nil {
			return spy.WrapError(spy.EINTERNAL, err, "failed to insert tag %q", tag)
		}
	}

	if err := tx.Commit(); err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to commit bookmark")
	}
	return nil
}

// FindBookmarkByID retrieves a bookmark by its entry ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*spy.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = ?`, id)
	bookmark, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, spy.Errorf(spy.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}

	tags, err := s.findTags(ctx, id)
	if err != nil {
		return nil, err
	}
	bookmark.Tags = tags
	return bookmark, nil
}

// FindBookmarks retrieves bookmarks matching the filter, newest first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter spy.BookmarkFilter) ([]*spy.Bookmark, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE 1=1`)
	var args []any

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Tag != nil {
		query.WriteString(" AND id IN (SELECT bookmark_id FROM bookmark_tags WHERE tag = ?)")
		args = append(args, string(*filter.Tag))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to query bookmarks")
	}
	defer rows.Close()

	var bookmarks []*spy.Bookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to iterate bookmarks")
	}
	// Release the single connection before loading tags.
	rows.Close()

	for _, b := range bookmarks {
		tags, err := s.findTags(ctx, b.Entry.ID())
		if err != nil {
			return nil, err
		}
		b.Tags = tags
	}

	return bookmarks, nil
}

// DeleteBookmark permanently removes a bookmark; its tags cascade.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to delete bookmark")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to count deleted rows")
	}
	if n == 0 {
		return spy.Errorf(spy.ENOTFOUND, "bookmark not found")
	}
	return nil
}

func (s *BookmarkService) findTags(ctx context.Context, id string) ([]spy.Tag, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tag FROM bookmark_tags WHERE bookmark_id = ? ORDER BY tag`, id)
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to query tags")
	}
	defer rows.Close()

	tags := []spy.Tag{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, spy.WrapError(spy.EINTERNAL, err, "failed to scan tag")
		}
		tags = append(tags, spy.Tag(tag))
	}
	if err := rows.Err(); err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to iterate tags")
	}
	return tags, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (*spy.Bookmark, error) {
	var (
		rec       spy.EntryRecord
		authors   string
		hash      string
		createdAt string
	)
	err := row.Scan(
		&rec.ID,
		&rec.URL,
		&rec.PageTitle,
		&rec.SiteTitle,
		&authors,
		&rec.Description,
		&rec.Thumbnail,
		&rec.FullText,
		&hash,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to scan bookmark")
	}

	if err := json.Unmarshal([]byte(authors), &rec.Authors); err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to decode authors")
	}

	entry, err := spy.RestoreEntry(rec)
	if err != nil {
		return nil, err
	}

	created, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &spy.Bookmark{
		Entry:       entry,
		ContentHash: hash,
		CreatedAt:   created,
	}, nil
}
