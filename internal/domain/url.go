package domain

import (
	"net/url"
	"strings"
)

// NormalizeURL prepends https:// when the raw input carries no scheme, so
// "example.com" becomes "https://example.com". Anything already starting
// with http:// or https:// is returned trimmed but otherwise untouched.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

// Hostname extracts the hostname of a URL, or "" when it cannot be parsed.
func Hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
