// Package http provides an HTTP-based implementation of spy.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/spy"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements spy.Fetcher at compile time.
var _ spy.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies using plain HTTP requests.
// The client settings are fixed at construction and shared by every
// request, including secondary fetches made during resolution.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the global timeout for a single request.
// Defaults to spy.DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to spy.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     spy.DefaultTimeout,
		userAgent:   spy.DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves url and returns its body decoded to UTF-8 text using the
// charset from the Content-Type header or the document itself.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", spy.WrapError(spy.EINVALID, err, "invalid request URL %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", spy.WrapError(spy.EFETCH, err, "failed to fetch URL %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", spy.Errorf(spy.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", spy.WrapError(spy.EDECODE, err, "failed to read body of %s", url)
	}
	if len(raw) == 0 {
		return "", nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", spy.WrapError(spy.EDECODE, err, "failed to decode body of %s", url)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", spy.WrapError(spy.EDECODE, err, "failed to decode body of %s", url)
	}

	return string(text), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
