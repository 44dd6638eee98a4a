package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newtab/internal/httpserver/deps"
	"newtab/internal/store"
)

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, d.Store.Settings())
	}
}

// UpdateSettings merges the patch one level deep; nested objects like the
// wallpaper or webdav config are replaced wholesale.
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch store.SettingsPatch
		if !decodeJSON(w, r, &patch) {
			return
		}
		d.Store.UpdateSettings(r.Context(), patch)
		respondJSON(w, http.StatusOK, d.Store.Settings())
	}
}

func ResetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ResetSettings(r.Context())
		respondJSON(w, http.StatusOK, d.Store.Settings())
	}
}

func ListSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, d.Store.SearchHistory())
	}
}

type historyInput struct {
	Query string `json:"query"`
}

func AddSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in historyInput
		if !decodeJSON(w, r, &in) {
			return
		}
		d.Store.AddSearchHistory(r.Context(), in.Query)
		respondJSON(w, http.StatusOK, d.Store.SearchHistory())
	}
}

func ClearSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ClearSearchHistory(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func AddSearchEngine(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in store.EngineInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if in.Name == "" || in.URL == "" {
			respondError(w, http.StatusBadRequest, "name and url are required")
			return
		}
		engine := d.Store.AddSearchEngine(r.Context(), in)
		respondJSON(w, http.StatusCreated, engine)
	}
}

func RemoveSearchEngine(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveSearchEngine(r.Context(), chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
