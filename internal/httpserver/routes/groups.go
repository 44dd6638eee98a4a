package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerGroups) }

func registerGroups(r chi.Router, d deps.Deps) {
	r.Route("/api/groups", func(r chi.Router) {
		r.Get("/", handlers.ListGroups(d))
		r.Post("/", handlers.AddGroup(d))
		r.Put("/active", handlers.SetActiveGroup(d))
		r.Patch("/{id}", handlers.UpdateGroup(d))
		r.Delete("/{id}", handlers.DeleteGroup(d))
	})
}
