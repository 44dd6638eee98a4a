package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerNotes) }

func registerNotes(r chi.Router, d deps.Deps) {
	r.Route("/api/notes", func(r chi.Router) {
		r.Get("/", handlers.GetNotes(d))
		r.Put("/", handlers.PutNotes(d))
	})
}
