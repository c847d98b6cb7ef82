// Package slog provides logging decorators for spy services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

// Ensure LoggingFetcher implements spy.Fetcher.
var _ spy.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   spy.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next spy.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher. Successful fetches are logged at
// debug level; failures at warn level with their error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch failed",
				"url", url,
				"duration", time.Since(begin),
				"code", spy.ErrorCode(err),
				"err", err,
			)
			return
		}
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
