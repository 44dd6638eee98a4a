package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
	"newtab/internal/httpserver/mw"
)

func init() { Register(registerWidgets) }

func registerWidgets(r chi.Router, d deps.Deps) {
	r.Get("/api/quote", handlers.GetQuote(d))
	r.Get("/api/weather", handlers.GetWeather(d))
	r.Get("/api/wallpaper", handlers.GetWallpaper(d))

	// Scraping endpoints hit arbitrary third-party sites, keep them slow.
	scrape := mw.RateLimit(mw.RateLimitConfig{
		Burst:             10,
		RefillPerIPPerMin: 30,
		MaxEntries:        1024,
	})
	r.With(scrape).Get("/api/favicon", handlers.GetFavicon(d))
	r.With(scrape).Get("/api/title", handlers.GetTitle(d))
}
