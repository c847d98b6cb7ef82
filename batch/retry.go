package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

var _ spy.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff delays.
// Invalid requests and undecodable bodies are not retried since another
// attempt cannot change the outcome.
type RetryFetcher struct {
	Fetcher spy.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// RetryDelays returns n backoff delays doubling from one second: 1s, 2s, 4s...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

// NewRetryFetcher wraps fetcher with the given number of retries.
func NewRetryFetcher(fetcher spy.Fetcher, retries int) *RetryFetcher {
	return &RetryFetcher{Fetcher: fetcher, Delays: RetryDelays(retries)}
}

// Fetch attempts the fetch once plus one retry per delay.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := f.Fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		if f.Logger != nil {
			f.Logger.Warn("retry fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", spy.WrapError(spy.EFETCH, ctx.Err(), "failed to fetch URL %s", url)
		case <-time.After(f.Delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.Fetcher.Close()
}

func retryable(err error) bool {
	switch spy.ErrorCode(err) {
	case spy.EINVALID, spy.EDECODE:
		return false
	}
	return true
}
