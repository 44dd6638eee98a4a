package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
)

type todoInput struct {
	Text string `json:"text"`
}

func ListTodos(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, d.Todos.All())
	}
}

func AddTodo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in todoInput
		if !decodeJSON(w, r, &in) {
			return
		}
		in.Text = strings.TrimSpace(in.Text)
		if in.Text == "" {
			respondError(w, http.StatusBadRequest, "text is required")
			return
		}
		respondJSON(w, http.StatusCreated, d.Todos.Add(r.Context(), in.Text))
	}
}

func ToggleTodo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Todos.Toggle(r.Context(), chi.URLParam(r, "id"))
		respondJSON(w, http.StatusOK, d.Todos.All())
	}
}

func DeleteTodo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Todos.Delete(r.Context(), chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearCompletedTodos(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Todos.ClearCompleted(r.Context())
		respondJSON(w, http.StatusOK, d.Todos.All())
	}
}
