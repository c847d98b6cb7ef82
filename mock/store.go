package mock

import (
	"context"

	"github.com/fwojciec/spy"
)

var _ spy.EntryStore = (*EntryStore)(nil)

// EntryStore is a mock implementation of spy.EntryStore.
type EntryStore struct {
	SaveFn   func(ctx context.Context, entry *spy.Entry, content string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *EntryStore) Save(ctx context.Context, entry *spy.Entry, content string) error {
	return s.SaveFn(ctx, entry, content)
}

func (s *EntryStore) Commit() error {
	return s.CommitFn()
}

func (s *EntryStore) Abort() error {
	return s.AbortFn()
}
