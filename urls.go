package spy

import (
	"net/url"
	"strings"
)

// Absolutize converts a candidate URL into an absolute http(s) URL relative
// to base. Data URIs, bare fragments and non-http schemes are rejected, as
// is anything that cannot be resolved against base. Parsing is lenient the
// way browsers are: tabs and newlines are dropped, a stray % is escaped and
// "https:img.png" is relative when base has the same scheme.
func Absolutize(base *url.URL, candidate string) (string, bool) {
	c := cleanCandidate(candidate)
	if c == "" || strings.HasPrefix(c, "data:") || strings.HasPrefix(c, "#") {
		return "", false
	}

	u, err := url.Parse(c)
	if err != nil {
		return "", false
	}

	if u.IsAbs() && isHTTPScheme(u.Scheme) && u.Host == "" {
		rest := strings.TrimPrefix(c[len(u.Scheme):], ":")
		if strings.HasPrefix(rest, "//") {
			return "", false
		}
		if base != nil && strings.EqualFold(base.Scheme, u.Scheme) {
			if u, err = url.Parse(rest); err != nil {
				return "", false
			}
		} else if u, err = url.Parse(u.Scheme + "://" + strings.TrimLeft(rest, "/")); err != nil {
			return "", false
		}
	}

	if u.IsAbs() {
		if !isHTTPScheme(u.Scheme) || u.Host == "" {
			return "", false
		}
		return u.String(), true
	}

	if base == nil || !base.IsAbs() {
		return "", false
	}
	resolved := base.ResolveReference(u)
	if !isHTTPScheme(resolved.Scheme) {
		return "", false
	}
	return resolved.String(), true
}

// cleanCandidate trims c, removes ASCII tabs and newlines and escapes any %
// not starting a valid percent-encoding.
func cleanCandidate(c string) string {
	c = strings.TrimSpace(c)
	c = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, c)
	if !strings.Contains(c, "%") {
		return c
	}
	var b strings.Builder
	for i := 0; i < len(c); i++ {
		if c[i] == '%' && (i+2 >= len(c) || !isHex(c[i+1]) || !isHex(c[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(c[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParsePageURL parses raw as the absolute http(s) URL of a page.
func ParsePageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if !u.IsAbs() || !isHTTPScheme(u.Scheme) || u.Host == "" {
		return nil, Errorf(EINVALID, "URL must be absolute http(s): %q", raw)
	}
	return u, nil
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
