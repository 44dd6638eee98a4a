package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerData) }

func registerData(r chi.Router, d deps.Deps) {
	r.Route("/api/data", func(r chi.Router) {
		r.Get("/export", handlers.ExportData(d))
		r.Post("/import", handlers.ImportData(d))
		r.Post("/reset", handlers.ResetAll(d))
	})
}
