// Package favicon resolves site icons and titles by scraping the target
// page. Pages are untrusted input: every fetch is time-boxed and the body
// read is capped.
package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"newtab/internal/logger"
	"newtab/internal/utils"
)

const (
	// DefaultProxyTemplate is the last-resort favicon service, keyed by
	// hostname.
	DefaultProxyTemplate = "https://www.google.com/s2/favicons?domain=%s&sz=64"

	// fetchTimeout bounds each network step; a slow strategy is abandoned
	// and the next one tried.
	fetchTimeout = 3 * time.Second

	// maxBodyBytes caps how much of a page is read for scraping.
	maxBodyBytes = 512 << 10

	// maxTitleRunes rejects implausibly long titles.
	maxTitleRunes = 50
)

var (
	linkTagRe  = regexp.MustCompile(`(?is)<link\s[^>]*>`)
	relIconRe  = regexp.MustCompile(`(?i)rel\s*=\s*["']?[^"'>]*icon[^"'>]*`)
	hrefAttrRe = regexp.MustCompile(`(?i)href\s*=\s*["']?([^"'\s>]+)`)
	titleRe    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// titleSeparators end the interesting part of a page title
// ("GitHub - Where the world builds" keeps only "GitHub").
var titleSeparators = []string{"-", "|", "–", "—"}

// Resolver scrapes favicons and titles.
type Resolver struct {
	http          *http.Client
	proxyTemplate string
	log           logger.Logger
}

// NewResolver creates a resolver with the default proxy fallback.
func NewResolver(log logger.Logger) *Resolver {
	return &Resolver{
		http:          &http.Client{Timeout: fetchTimeout},
		proxyTemplate: DefaultProxyTemplate,
		log:           log,
	}
}

// ResolveFavicon finds an icon URL for the page, trying in order: an
// explicit icon link tag in the page markup, the origin's /favicon.ico,
// and finally the favicon proxy. Failures cascade to the next strategy;
// only an unparseable input URL yields "".
func (r *Resolver) ResolveFavicon(ctx context.Context, rawURL string) string {
	base, err := url.Parse(rawURL)
	if err != nil || base.Hostname() == "" {
		return ""
	}

	if body, ok := r.fetchBody(ctx, base.String()); ok {
		if href := extractIconHref(body); href != "" {
			if resolved := resolveHref(base, href); resolved != "" {
				return resolved
			}
		}
	}

	icoURL := base.Scheme + "://" + base.Host + "/favicon.ico"
	if r.probe(ctx, icoURL) {
		return icoURL
	}

	return fmt.Sprintf(r.proxyTemplate, base.Hostname())
}

// ResolveTitle fetches the page and extracts its <title>, cut at the
// first separator. Empty or implausibly long titles fall back to the
// capitalized second-level domain.
func (r *Resolver) ResolveTitle(ctx context.Context, rawURL string) string {
	base, err := url.Parse(rawURL)
	if err != nil || base.Hostname() == "" {
		return ""
	}

	if body, ok := r.fetchBody(ctx, base.String()); ok {
		if title := extractTitle(body); title != "" {
			return title
		}
	}

	return domainName(base.Hostname())
}

// fetchBody GETs the page with a bounded read. Returns ok=false on any
// transport or status failure.
func (r *Resolver) fetchBody(ctx context.Context, pageURL string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", false
	}

	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Debug("page fetch failed", logger.String("url", pageURL), logger.Error(err))
		return "", false
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", false
	}
	return string(body), true
}

// probe checks whether the URL answers 2xx.
func (r *Resolver) probe(ctx context.Context, target string) bool {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return false
	}
	defer utils.Close(resp.Body)
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// extractIconHref returns the href of the first link tag whose rel
// mentions "icon", or "".
func extractIconHref(body string) string {
	for _, tag := range linkTagRe.FindAllString(body, -1) {
		if !relIconRe.MatchString(tag) {
			continue
		}
		if m := hrefAttrRe.FindStringSubmatch(tag); m != nil {
			return m[1]
		}
	}
	return ""
}

// resolveHref turns a protocol-relative, absolute or relative href into
// an absolute URL against the page it came from.
func resolveHref(base *url.URL, href string) string {
	if strings.HasPrefix(href, "//") {
		return base.Scheme + ":" + href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// extractTitle pulls the page title and trims it down to a card-sized
// name, or "" when nothing plausible is left.
func extractTitle(body string) string {
	m := titleRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}

	title := strings.TrimSpace(m[1])
	cut := len(title)
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	title = strings.TrimSpace(title[:cut])

	if title == "" || utf8.RuneCountInString(title) >= maxTitleRunes {
		return ""
	}
	return title
}

// domainName derives a display name from the hostname's second-level
// domain: "www.example.com" becomes "Example".
func domainName(hostname string) string {
	parts := strings.Split(hostname, ".")
	name := parts[0]
	if len(parts) >= 2 {
		name = parts[len(parts)-2]
	}
	if name == "" {
		return hostname
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
