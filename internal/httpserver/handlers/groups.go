package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
)

type groupInput struct {
	Name string `json:"name"`
}

type activeGroupInput struct {
	ID string `json:"id"`
}

func ListGroups(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, d.Store.Groups())
	}
}

func AddGroup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in groupInput
		if !decodeJSON(w, r, &in) {
			return
		}
		in.Name = strings.TrimSpace(in.Name)
		if in.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		group := d.Store.AddGroup(r.Context(), in.Name)
		respondJSON(w, http.StatusCreated, group)
	}
}

func UpdateGroup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in groupInput
		if !decodeJSON(w, r, &in) {
			return
		}
		d.Store.UpdateGroup(r.Context(), chi.URLParam(r, "id"), in.Name)
		respondJSON(w, http.StatusOK, d.Store.Groups())
	}
}

// DeleteGroup removes a group; its sites move to the default group.
// The reserved groups cannot be deleted.
func DeleteGroup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.DeleteGroup(r.Context(), chi.URLParam(r, "id"))
		respondJSON(w, http.StatusOK, d.Store.Groups())
	}
}

func SetActiveGroup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in activeGroupInput
		if !decodeJSON(w, r, &in) {
			return
		}
		d.Store.SetActiveGroup(r.Context(), in.ID)
		respondJSON(w, http.StatusOK, map[string]string{"active": d.Store.ActiveGroup()})
	}
}
