package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

// Ensure LoggingEntryBuilder implements spy.EntryBuilder.
var _ spy.EntryBuilder = (*LoggingEntryBuilder)(nil)

// LoggingEntryBuilder wraps an EntryBuilder with logging.
type LoggingEntryBuilder struct {
	next   spy.EntryBuilder
	logger *slog.Logger
}

// NewLoggingEntryBuilder creates a new LoggingEntryBuilder.
func NewLoggingEntryBuilder(next spy.EntryBuilder, logger *slog.Logger) *LoggingEntryBuilder {
	return &LoggingEntryBuilder{next: next, logger: logger}
}

// BuildEntry logs the outcome of each build.
func (b *LoggingEntryBuilder) BuildEntry(ctx context.Context, rawURL string, opts spy.BuildOptions) (entry *spy.Entry, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", rawURL, "duration", time.Since(begin)}
		if err != nil {
			b.logger.Error("build entry", append(attrs, "code", spy.ErrorCode(err), "err", err)...)
			return
		}
		b.logger.Info("build entry", append(attrs, "id", entry.ID(), "chars", len(entry.FullText()))...)
	}(time.Now())
	return b.next.BuildEntry(ctx, rawURL, opts)
}
