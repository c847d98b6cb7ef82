package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

// Ensure LoggingResolver implements spy.MetadataResolver.
var _ spy.MetadataResolver = (*LoggingResolver)(nil)

// LoggingResolver logs which fields a resolution found.
type LoggingResolver struct {
	next   spy.MetadataResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next spy.MetadataResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the result at debug level.
func (r *LoggingResolver) Resolve(ctx context.Context, req spy.MetadataRequest) *spy.Metadata {
	begin := time.Now()
	md := r.next.Resolve(ctx, req)
	var page string
	if req.URL != nil {
		page = req.URL.String()
	}
	r.logger.Debug("resolve",
		"url", page,
		"title", md.Title != "",
		"site", md.SiteName,
		"authors", md.Authors.Len(),
		"description", md.Description != "",
		"thumbnail", md.Thumbnail != "",
		"duration", time.Since(begin),
	)
	return md
}
