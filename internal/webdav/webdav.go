// Package webdav is a minimal Basic-auth WebDAV client for pushing and
// pulling the backup snapshot. Single attempt per call, no chunking, no
// conflict detection: last writer wins.
package webdav

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"time"

	"newtab/internal/logger"
	"newtab/internal/utils"
)

// BackupFilename is the fixed remote object name under the endpoint.
const BackupFilename = "newtab-backup.json"

const requestTimeout = 15 * time.Second

// Client talks to one WebDAV endpoint.
type Client struct {
	endpoint string
	filePath string
	auth     string
	http     *http.Client
	log      logger.Logger
}

// New creates a client for the endpoint. The Basic auth header is
// computed once up front.
func New(endpoint, username, password string, log logger.Logger) *Client {
	trimmed := strings.TrimRight(endpoint, "/")
	return &Client{
		endpoint: trimmed,
		filePath: trimmed + "/" + BackupFilename,
		auth:     "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
		http:     &http.Client{Timeout: requestTimeout},
		log:      log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Test probes the endpoint with a directory listing. 2xx and 207
// (multi-status) both count as reachable.
func (c *Client) Test(ctx context.Context) bool {
	req, err := c.newRequest(ctx, "PROPFIND", c.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Depth", "0")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("webdav probe failed", logger.Error(err))
		return false
	}
	defer utils.Close(resp.Body)
	_, _ = io.Copy(io.Discard, resp.Body)

	return isOK(resp.StatusCode) || resp.StatusCode == http.StatusMultiStatus
}

// Upload PUTs the payload to the fixed backup path.
func (c *Client) Upload(ctx context.Context, payload []byte) bool {
	req, err := c.newRequest(ctx, http.MethodPut, c.filePath, bytes.NewReader(payload))
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("webdav upload failed", logger.Error(err))
		return false
	}
	defer utils.Close(resp.Body)
	_, _ = io.Copy(io.Discard, resp.Body)

	return isOK(resp.StatusCode) ||
		resp.StatusCode == http.StatusCreated ||
		resp.StatusCode == http.StatusNoContent
}

// Download GETs the backup. Non-2xx or transport failure yields nil.
func (c *Client) Download(ctx context.Context) []byte {
	req, err := c.newRequest(ctx, http.MethodGet, c.filePath, nil)
	if err != nil {
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("webdav download failed", logger.Error(err))
		return nil
	}
	defer utils.Close(resp.Body)

	if !isOK(resp.StatusCode) {
		c.log.Warn("webdav download returned non-2xx", logger.Int("status", resp.StatusCode))
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("webdav download read failed", logger.Error(err))
		return nil
	}
	return data
}

func isOK(status int) bool {
	return status >= 200 && status <= 299
}
