package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", handlers.GetSettings(d))
		r.Patch("/", handlers.UpdateSettings(d))
		r.Post("/reset", handlers.ResetSettings(d))
	})
}
