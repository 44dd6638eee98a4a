// Package weather looks up current conditions via the wttr.in JSON API.
package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newtab/internal/logger"
	"newtab/internal/utils"
)

const (
	// DefaultBaseURL is the wttr.in endpoint.
	DefaultBaseURL = "https://wttr.in"

	requestTimeout = 10 * time.Second
)

// Weather is the condensed result shown on the dashboard header.
type Weather struct {
	City        string `json:"city"`
	Temp        int    `json:"temp"` // integer Celsius
	Description string `json:"weather"`
	Icon        string `json:"icon"`
}

// Client queries the weather upstream. Stateless; one attempt per call.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// New creates a weather client.
func New(baseURL string, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// wttrResponse mirrors the slices-of-single-objects shape wttr.in returns.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherCode string `json:"weatherCode"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []struct {
			Value string `json:"value"`
		} `json:"areaName"`
		Region []struct {
			Value string `json:"value"`
		} `json:"region"`
	} `json:"nearest_area"`
}

// Fetch looks up the weather for cityQuery (empty = IP-based location).
// Network errors and malformed payloads both degrade to nil.
func (c *Client) Fetch(ctx context.Context, cityQuery string) *Weather {
	location := ""
	if trimmed := strings.TrimSpace(cityQuery); trimmed != "" {
		location = url.PathEscape(trimmed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+location+"?format=j1", nil)
	if err != nil {
		c.log.Warn("failed to build weather request", logger.Error(err))
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("weather fetch failed", logger.Error(err))
		return nil
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("weather upstream returned non-2xx", logger.Int("status", resp.StatusCode))
		return nil
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn("weather payload is malformed", logger.Error(err))
		return nil
	}
	if len(payload.CurrentCondition) == 0 || len(payload.NearestArea) == 0 {
		c.log.Warn("weather payload is missing expected fields")
		return nil
	}

	current := payload.CurrentCondition[0]
	area := payload.NearestArea[0]

	city := cityQuery
	if len(area.AreaName) > 0 && area.AreaName[0].Value != "" {
		city = area.AreaName[0].Value
	} else if len(area.Region) > 0 && area.Region[0].Value != "" {
		city = area.Region[0].Value
	}
	if city == "" {
		city = "Unknown"
	}

	temp, err := strconv.Atoi(current.TempC)
	if err != nil {
		temp = 0
	}

	description := ""
	if len(current.WeatherDesc) > 0 {
		description = current.WeatherDesc[0].Value
	}

	return &Weather{
		City:        city,
		Temp:        temp,
		Description: description,
		Icon:        iconForCode(current.WeatherCode),
	}
}
