package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

// Ensure LoggingBookmarkService implements spy.BookmarkService.
var _ spy.BookmarkService = (*LoggingBookmarkService)(nil)

// LoggingBookmarkService wraps a BookmarkService with logging.
type LoggingBookmarkService struct {
	next   spy.BookmarkService
	logger *slog.Logger
}

// NewLoggingBookmarkService creates a new LoggingBookmarkService.
func NewLoggingBookmarkService(next spy.BookmarkService, logger *slog.Logger) *LoggingBookmarkService {
	return &LoggingBookmarkService{next: next, logger: logger}
}

func (s *LoggingBookmarkService) CreateBookmark(ctx context.Context, bookmark *spy.Bookmark) (err error) {
	defer func(begin time.Time) {
		var id string
		if bookmark != nil && bookmark.Entry != nil {
			id = bookmark.Entry.ID()
		}
		s.logger.Info("create bookmark", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.CreateBookmark(ctx, bookmark)
}

func (s *LoggingBookmarkService) ReplaceBookmark(ctx context.Context, bookmark *spy.Bookmark) (err error) {
	defer func(begin time.Time) {
		var id string
		if bookmark != nil && bookmark.Entry != nil {
			id = bookmark.Entry.ID()
		}
		s.logger.Info("replace bookmark", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.ReplaceBookmark(ctx, bookmark)
}

func (s *LoggingBookmarkService) FindBookmarkByID(ctx context.Context, id string) (_ *spy.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find bookmark", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindBookmarkByID(ctx, id)
}

func (s *LoggingBookmarkService) FindBookmarks(ctx context.Context, filter spy.BookmarkFilter) (bookmarks []*spy.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find bookmarks", "count", len(bookmarks), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindBookmarks(ctx, filter)
}

func (s *LoggingBookmarkService) DeleteBookmark(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete bookmark", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.DeleteBookmark(ctx, id)
}
