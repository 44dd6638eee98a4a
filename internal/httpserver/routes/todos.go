package routes

import (
	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/handlers"
)

func init() { Register(registerTodos) }

func registerTodos(r chi.Router, d deps.Deps) {
	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", handlers.ListTodos(d))
		r.Post("/", handlers.AddTodo(d))
		r.Delete("/completed", handlers.ClearCompletedTodos(d))
		r.Patch("/{id}", handlers.ToggleTodo(d))
		r.Delete("/{id}", handlers.DeleteTodo(d))
	})
}
