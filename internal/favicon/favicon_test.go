package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"newtab/internal/logger"
)

func TestResolveFaviconFromLinkTag(t *testing.T) {
	tests := []struct {
		name string
		html string
		want func(serverURL string) string
	}{
		{
			name: "absolute href",
			html: `<html><head><link rel="icon" href="https://cdn.example.com/fav.png"></head></html>`,
			want: func(string) string { return "https://cdn.example.com/fav.png" },
		},
		{
			name: "relative href",
			html: `<head><link rel="shortcut icon" href="/static/fav.ico"></head>`,
			want: func(s string) string { return s + "/static/fav.ico" },
		},
		{
			name: "protocol-relative href",
			html: `<head><link rel="icon" href="//cdn.example.com/fav.png"></head>`,
			want: func(string) string { return "http://cdn.example.com/fav.png" },
		},
		{
			name: "apple-touch-icon also matches",
			html: `<head><link rel="apple-touch-icon" href="/touch.png"></head>`,
			want: func(s string) string { return s + "/touch.png" },
		},
		{
			name: "href before rel",
			html: `<head><link href="/first.ico" rel="icon"></head>`,
			want: func(s string) string { return s + "/first.ico" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.html))
			}))
			defer srv.Close()

			r := NewResolver(logger.NewNop())
			got := r.ResolveFavicon(context.Background(), srv.URL)
			assert.Equal(t, tt.want(srv.URL), got)
		})
	}
}

func TestResolveFaviconFallsBackToIcoProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><head><title>No icon link here</title></head></html>`))
		case "/favicon.ico":
			_, _ = w.Write([]byte("icon-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := NewResolver(logger.NewNop())
	got := r.ResolveFavicon(context.Background(), srv.URL)
	assert.Equal(t, srv.URL+"/favicon.ico", got)
}

func TestResolveFaviconFallsBackToProxy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewResolver(logger.NewNop())
	got := r.ResolveFavicon(context.Background(), srv.URL)
	assert.True(t, strings.HasPrefix(got, "https://www.google.com/s2/favicons?domain="),
		"expected proxy fallback, got %q", got)
	assert.Contains(t, got, "127.0.0.1")
}

func TestResolveFaviconUnparseableURL(t *testing.T) {
	r := NewResolver(logger.NewNop())
	assert.Empty(t, r.ResolveFavicon(context.Background(), "://not-a-url"))
	assert.Empty(t, r.ResolveFavicon(context.Background(), ""))
}

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		want  string
		isSLD bool
	}{
		{"plain title", `<title>GitHub</title>`, "GitHub", false},
		{"hyphen separator", `<title>GitHub - Where the world builds software</title>`, "GitHub", false},
		{"pipe separator", `<title>MDN | Web Docs</title>`, "MDN", false},
		{"en dash separator", `<title>Example – Landing</title>`, "Example", false},
		{"em dash separator", `<title>Example — Landing</title>`, "Example", false},
		{"attributes on tag", `<title data-x="1">Tagged</title>`, "Tagged", false},
		{"empty title falls back", `<title>   </title>`, "", true},
		{"overlong title falls back", `<title>` + strings.Repeat("x", 80) + `</title>`, "", true},
		{"no title tag falls back", `<h1>nothing</h1>`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.html))
			}))
			defer srv.Close()

			r := NewResolver(logger.NewNop())
			got := r.ResolveTitle(context.Background(), srv.URL)
			if tt.isSLD {
				// httptest serves on 127.0.0.1, whose "second-level
				// domain" derivation capitalizes the first label.
				assert.NotEmpty(t, got)
				assert.NotEqual(t, strings.TrimSpace(tt.html), got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDomainName(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"www.example.com", "Example"},
		{"example.com", "Example"},
		{"docs.rs", "Docs"},
		{"localhost", "Localhost"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domainName(tt.host), "host %q", tt.host)
	}
}

func TestExtractIconHrefIgnoresStylesheets(t *testing.T) {
	body := `<link rel="stylesheet" href="/style.css"><link rel="icon" href="/fav.ico">`
	assert.Equal(t, "/fav.ico", extractIconHref(body))
}
