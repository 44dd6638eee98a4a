// Package wallpaper picks a daily background image from the Bing image
// archive. The client itself is cache-free; callers cache the chosen URL
// (24h, keyed by wallpaper source).
package wallpaper

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"newtab/internal/logger"
	"newtab/internal/utils"
)

const (
	// DefaultBaseURL is the Bing origin; relative image URLs returned by
	// the archive are resolved against it.
	DefaultBaseURL = "https://www.bing.com"

	archivePath = "/HPImageArchive.aspx?format=js&idx=0&n=8&mkt=zh-CN"

	// CacheTTL is how long callers should keep a picked wallpaper.
	CacheTTL = 24 * time.Hour

	requestTimeout = 10 * time.Second
)

// Client fetches wallpaper candidates. Stateless; one attempt per call.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
	pick    func(n int) int
}

// New creates a wallpaper client.
func New(baseURL string, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
		pick:    rand.IntN,
	}
}

type archiveResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// FetchDaily returns one of the archive's candidate images, chosen
// uniformly at random on every call. Any failure degrades to "".
func (c *Client) FetchDaily(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+archivePath, nil)
	if err != nil {
		c.log.Warn("failed to build wallpaper request", logger.Error(err))
		return ""
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("wallpaper fetch failed", logger.Error(err))
		return ""
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("wallpaper upstream returned non-2xx", logger.Int("status", resp.StatusCode))
		return ""
	}

	var payload archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn("wallpaper payload is malformed", logger.Error(err))
		return ""
	}
	if len(payload.Images) == 0 {
		c.log.Warn("wallpaper archive returned no images")
		return ""
	}

	chosen := payload.Images[c.pick(len(payload.Images))]
	return c.baseURL + chosen.URL
}
