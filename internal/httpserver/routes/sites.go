package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerSites) }

func registerSites(r chi.Router, d deps.Deps) {
	r.Route("/api/sites", func(r chi.Router) {
		r.Get("/", handlers.ListSites(d))
		r.Post("/", handlers.AddSite(d))
		r.Put("/order", handlers.ReorderSites(d))
		r.Patch("/{id}", handlers.UpdateSite(d))
		r.Delete("/{id}", handlers.DeleteSite(d))
	})
}
