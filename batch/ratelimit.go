package batch

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/spy"
	"golang.org/x/time/rate"
)

var _ spy.DomainLimiter = (*HostLimiter)(nil)

// HostLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter, so requests to different hosts proceed
// concurrently while requests to one host are spaced out.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second per
// host, with a burst of 1.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to host.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ spy.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a DomainLimiter before every fetch.
type LimitedFetcher struct {
	Fetcher spy.Fetcher
	Limiter spy.DomainLimiter
}

// NewLimitedFetcher wraps fetcher so each request waits on limiter first.
func NewLimitedFetcher(fetcher spy.Fetcher, limiter spy.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{Fetcher: fetcher, Limiter: limiter}
}

// Fetch waits for the URL's host, then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		if err := f.Limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", spy.WrapError(spy.EFETCH, err, "rate limit wait for %s", rawURL)
		}
	}
	return f.Fetcher.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.Fetcher.Close()
}
