package mock

import (
	"context"

	"github.com/fwojciec/spy"
)

var _ spy.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of spy.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn   func(ctx context.Context, bookmark *spy.Bookmark) error
	ReplaceBookmarkFn  func(ctx context.Context, bookmark *spy.Bookmark) error
	FindBookmarkByIDFn func(ctx context.Context, id string) (*spy.Bookmark, error)
	FindBookmarksFn    func(ctx context.Context, filter spy.BookmarkFilter) ([]*spy.Bookmark, error)
	DeleteBookmarkFn   func(ctx context.Context, id string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, bookmark *spy.Bookmark) error {
	return s.CreateBookmarkFn(ctx, bookmark)
}

func (s *BookmarkService) ReplaceBookmark(ctx context.Context, bookmark *spy.Bookmark) error {
	return s.ReplaceBookmarkFn(ctx, bookmark)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*spy.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter spy.BookmarkFilter) ([]*spy.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	return s.DeleteBookmarkFn(ctx, id)
}
