package spy

import "time"

// DefaultUserAgent is sent with every HTTP request unless configured otherwise.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.10 Safari/605.1.1"

// DefaultTimeout is the global timeout for a single HTTP request.
const DefaultTimeout = 10 * time.Second

// Content extractor names.
const (
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config holds the process-wide settings. It is read-only once built.
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	Template    string
	Extractor   string
	Markdown    bool
	Browser     bool
	Concurrency int
	RateLimit   float64 // requests per second per host; 0 disables limiting
	Retries     int     // primary fetch retries
	DBPath      string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
		Extractor:   ExtractorReadability,
		Concurrency: 4,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return Errorf(EINVALID, "user agent required")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	switch c.Extractor {
	case ExtractorReadability, ExtractorTrafilatura:
	default:
		return Errorf(EINVALID, "unknown extractor %q", c.Extractor)
	}
	if c.Concurrency <= 0 {
		return Errorf(EINVALID, "concurrency must be positive")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	if c.Retries < 0 {
		return Errorf(EINVALID, "retries must not be negative")
	}
	return nil
}
