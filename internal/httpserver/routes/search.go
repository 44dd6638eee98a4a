package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	r.Route("/api/search", func(r chi.Router) {
		r.Get("/history", handlers.ListSearchHistory(d))
		r.Post("/history", handlers.AddSearchHistory(d))
		r.Delete("/history", handlers.ClearSearchHistory(d))
		r.Post("/engines", handlers.AddSearchEngine(d))
		r.Delete("/engines/{id}", handlers.RemoveSearchEngine(d))
	})
}
