package spy

import "context"

// Fetcher retrieves the body of a URL as text.
// It is used for the primary page and for secondary resources such as web
// app manifests and oEmbed descriptors.
type Fetcher interface {
	// Fetch retrieves url and returns its body decoded as text.
	// Failures to read or decode the body are reported as EDECODE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-host rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
