package mock

import (
	"context"

	"github.com/fwojciec/spy"
)

var (
	_ spy.MetadataResolver = (*MetadataResolver)(nil)
	_ spy.EntryBuilder     = (*EntryBuilder)(nil)
	_ spy.EntryRenderer    = (*EntryRenderer)(nil)
)

// MetadataResolver is a mock implementation of spy.MetadataResolver.
type MetadataResolver struct {
	ResolveFn func(ctx context.Context, req spy.MetadataRequest) *spy.Metadata
}

func (r *MetadataResolver) Resolve(ctx context.Context, req spy.MetadataRequest) *spy.Metadata {
	return r.ResolveFn(ctx, req)
}

// EntryBuilder is a mock implementation of spy.EntryBuilder.
type EntryBuilder struct {
	BuildEntryFn func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error)
}

func (b *EntryBuilder) BuildEntry(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
	return b.BuildEntryFn(ctx, rawURL, opts)
}

// EntryRenderer is a mock implementation of spy.EntryRenderer.
type EntryRenderer struct {
	RenderFn func(entry *spy.Entry) (string, error)
}

func (r *EntryRenderer) Render(entry *spy.Entry) (string, error) {
	return r.RenderFn(entry)
}
