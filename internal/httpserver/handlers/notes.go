package handlers

import (
	"net/http"

	"newtab/internal/httpserver/deps"
)

type notesPayload struct {
	Content string `json:"content"`
}

func GetNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, notesPayload{Content: d.Notes.Get()})
	}
}

func PutNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in notesPayload
		if !decodeJSON(w, r, &in) {
			return
		}
		d.Notes.Set(r.Context(), in.Content)
		respondJSON(w, http.StatusOK, notesPayload{Content: d.Notes.Get()})
	}
}
