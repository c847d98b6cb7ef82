// Package rod provides a spy.Fetcher that renders pages in headless Chrome,
// for pages whose metadata is only present after JavaScript runs.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/spy"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements spy.Fetcher at compile time.
var _ spy.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*fetcherConfig)

type fetcherConfig struct {
	timeout   time.Duration
	userAgent string
	maxPages  int64
}

// WithFetchTimeout bounds a single page render.
// Defaults to spy.DefaultTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *fetcherConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent the browser sends.
func WithUserAgent(ua string) Option {
	return func(c *fetcherConfig) {
		c.userAgent = ua
	}
}

// WithRecycleAfter sets how many pages are rendered before the browser
// is replaced.
func WithRecycleAfter(pages int64) Option {
	return func(c *fetcherConfig) {
		c.maxPages = pages
	}
}

// NewFetcher launches a headless browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	cfg := fetcherConfig{
		timeout:   spy.DefaultTimeout,
		userAgent: spy.DefaultUserAgent,
		maxPages:  DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	manager, err := NewBrowserManager(
		WithMaxPages(cfg.maxPages),
		WithBrowserUserAgent(cfg.userAgent),
	)
	if err != nil {
		return nil, err
	}

	return &Fetcher{manager: manager, timeout: cfg.timeout}, nil
}

// Fetch navigates to url, waits for the load event and returns the
// rendered document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", spy.Errorf(spy.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", spy.WrapError(spy.EFETCH, err, "failed to fetch URL %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", spy.WrapError(spy.EFETCH, err, "failed to open page for %s", url)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", spy.WrapError(spy.EFETCH, err, "failed to fetch URL %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", spy.WrapError(spy.EFETCH, err, "failed to fetch URL %s", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", spy.WrapError(spy.EDECODE, err, "failed to read rendered HTML of %s", url)
	}
	f.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
