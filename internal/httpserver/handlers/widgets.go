package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"newtab/internal/domain"
	"newtab/internal/httpserver/deps"
	"newtab/internal/logger"
	"newtab/internal/quote"
	"newtab/internal/storage"
	"newtab/internal/wallpaper"
)

// GetQuote serves the current quote, cached upstream for 30 minutes.
// ?refresh=1 bypasses the cache.
func GetQuote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := d.Store.Settings().HitokotoTypes

		var q *quote.Quote
		if r.URL.Query().Get("refresh") == "1" {
			q = d.Quote.Refresh(r.Context(), categories)
		} else {
			q = d.Quote.Fetch(r.Context(), categories)
		}

		if q == nil {
			respondError(w, http.StatusBadGateway, "quote service unavailable")
			return
		}
		respondJSON(w, http.StatusOK, q)
	}
}

func GetWeather(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := strings.TrimSpace(r.URL.Query().Get("city"))
		if city == "" {
			city = d.Store.Settings().WeatherCity
		}

		weather := d.Weather.Fetch(r.Context(), city)
		if weather == nil {
			respondError(w, http.StatusBadGateway, "weather service unavailable")
			return
		}
		respondJSON(w, http.StatusOK, weather)
	}
}

type wallpaperResponse struct {
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	Color  string `json:"color,omitempty"`
}

// GetWallpaper resolves the background from the configured source. The
// daily pick is cached for 24h; ?refresh=1 forces a new one.
func GetWallpaper(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := d.Store.Settings().Wallpaper

		switch cfg.Source {
		case domain.WallpaperLocal:
			respondJSON(w, http.StatusOK, wallpaperResponse{Source: string(cfg.Source), URL: cfg.URL})
			return
		case domain.WallpaperColor:
			respondJSON(w, http.StatusOK, wallpaperResponse{Source: string(cfg.Source), Color: cfg.Color})
			return
		}

		refresh := r.URL.Query().Get("refresh") == "1"
		if !refresh {
			if data, err := d.KV.Get(r.Context(), storage.KeyWallpaperCache); err == nil {
				var cached wallpaperResponse
				if json.Unmarshal(data, &cached) == nil && cached.URL != "" {
					respondJSON(w, http.StatusOK, cached)
					return
				}
			}
		}

		url := d.Wallpaper.FetchDaily(r.Context())
		if url == "" {
			respondError(w, http.StatusBadGateway, "wallpaper service unavailable")
			return
		}

		resp := wallpaperResponse{Source: string(domain.WallpaperBing), URL: url}
		if data, err := json.Marshal(resp); err == nil {
			if err := d.KV.Set(r.Context(), storage.KeyWallpaperCache, data, wallpaper.CacheTTL); err != nil {
				d.Logger.Warn("failed to cache wallpaper", logger.Error(err))
			}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// GetFavicon resolves an icon URL for an arbitrary site.
func GetFavicon(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := domain.NormalizeURL(r.URL.Query().Get("url"))
		if target == "" {
			respondError(w, http.StatusBadRequest, "url is required")
			return
		}

		icon := d.Favicon.ResolveFavicon(r.Context(), target)
		if icon == "" {
			respondError(w, http.StatusBadRequest, "url is not resolvable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"icon": icon})
	}
}

// GetTitle suggests a display name for an arbitrary site.
func GetTitle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := domain.NormalizeURL(r.URL.Query().Get("url"))
		if target == "" {
			respondError(w, http.StatusBadRequest, "url is required")
			return
		}

		title := d.Favicon.ResolveTitle(r.Context(), target)
		if title == "" {
			respondError(w, http.StatusBadRequest, "url is not resolvable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"title": title})
	}
}
