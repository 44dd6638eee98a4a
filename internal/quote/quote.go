// Package quote fetches the "hitokoto" quote of the moment, with a
// single-slot durable cache so reloads inside the TTL never hit the
// network.
package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"newtab/internal/logger"
	"newtab/internal/storage"
	"newtab/internal/utils"
)

const (
	// DefaultBaseURL is the hitokoto API endpoint.
	DefaultBaseURL = "https://v1.hitokoto.cn"

	// CacheTTL bounds how long a fetched quote is served from cache.
	CacheTTL = 30 * time.Minute

	requestTimeout = 10 * time.Second
)

// Quote is the upstream response shape.
type Quote struct {
	ID       int     `json:"id"`
	Hitokoto string  `json:"hitokoto"`
	Type     string  `json:"type"`
	From     string  `json:"from"`
	FromWho  *string `json:"from_who"`
	Creator  string  `json:"creator"`
}

// Client fetches quotes and owns the cache slot.
//
// The cache is a single slot keyed by nothing: it is NOT segmented by the
// category filter. Switching categories while the slot is warm serves the
// cached quote of the old categories until the TTL runs out or Refresh is
// called. That matches the dashboard's historical behavior and callers
// rely on Refresh for an immediate category switch.
type Client struct {
	baseURL string
	http    *http.Client
	kv      storage.KV
	log     logger.Logger
}

// New creates a quote client backed by the given cache store.
func New(baseURL string, kv storage.KV, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		kv:      kv,
		log:     log,
	}
}

// Fetch returns a quote for the given non-empty category set, serving the
// cache slot when warm. Any network or decoding failure degrades to nil;
// the caller shows fallback UI, never an error.
func (c *Client) Fetch(ctx context.Context, categories []string) *Quote {
	if cached := c.cached(ctx); cached != nil {
		return cached
	}

	q := url.Values{}
	for _, category := range categories {
		q.Add("c", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		c.log.Warn("failed to build quote request", logger.Error(err))
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("quote fetch failed", logger.Error(err))
		return nil
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("quote upstream returned non-2xx", logger.Int("status", resp.StatusCode))
		return nil
	}

	var quote Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		c.log.Warn("quote payload is malformed", logger.Error(err))
		return nil
	}

	c.store(ctx, &quote)
	return &quote
}

// Refresh invalidates the cache slot and fetches a fresh quote regardless
// of cache age.
func (c *Client) Refresh(ctx context.Context, categories []string) *Quote {
	if err := c.kv.Delete(ctx, storage.KeyQuoteCache); err != nil {
		c.log.Warn("failed to clear quote cache", logger.Error(err))
	}
	return c.Fetch(ctx, categories)
}

func (c *Client) cached(ctx context.Context) *Quote {
	data, err := c.kv.Get(ctx, storage.KeyQuoteCache)
	if err != nil {
		return nil
	}
	var quote Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		// Stale or foreign cache content; drop it.
		_ = c.kv.Delete(ctx, storage.KeyQuoteCache)
		return nil
	}
	return &quote
}

func (c *Client) store(ctx context.Context, quote *Quote) {
	data, err := json.Marshal(quote)
	if err != nil {
		c.log.Error("failed to marshal quote", logger.Error(err))
		return
	}
	if err := c.kv.Set(ctx, storage.KeyQuoteCache, data, CacheTTL); err != nil {
		c.log.Warn("failed to cache quote", logger.Error(err))
	}
}
