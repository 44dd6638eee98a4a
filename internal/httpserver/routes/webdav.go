package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerWebDAV) }

func registerWebDAV(r chi.Router, d deps.Deps) {
	r.Route("/api/webdav", func(r chi.Router) {
		r.Post("/test", handlers.TestWebDAV(d))
		r.Post("/sync-up", handlers.SyncUp(d))
		r.Post("/sync-down", handlers.SyncDown(d))
		r.Get("/status", handlers.SyncStatus(d))
	})
}
