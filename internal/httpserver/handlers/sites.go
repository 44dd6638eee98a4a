package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"newtab/internal/domain"
	"newtab/internal/httpserver/deps"
	"newtab/internal/store"
)

func ListSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, d.Store.Sites())
	}
}

// AddSite creates a site. The URL is normalized so bare hostnames work;
// an empty name or url is rejected.
func AddSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in store.SiteInput
		if !decodeJSON(w, r, &in) {
			return
		}

		in.Name = strings.TrimSpace(in.Name)
		in.URL = domain.NormalizeURL(in.URL)
		if in.Name == "" || in.URL == "" {
			respondError(w, http.StatusBadRequest, "name and url are required")
			return
		}
		if in.GroupID == "" {
			in.GroupID = domain.GroupDefault
		}

		site := d.Store.AddSite(r.Context(), in)
		respondJSON(w, http.StatusCreated, site)
	}
}

func UpdateSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch store.SitePatch
		if !decodeJSON(w, r, &patch) {
			return
		}
		if patch.URL != nil {
			normalized := domain.NormalizeURL(*patch.URL)
			patch.URL = &normalized
		}

		d.Store.UpdateSite(r.Context(), chi.URLParam(r, "id"), patch)
		respondJSON(w, http.StatusOK, d.Store.Sites())
	}
}

func DeleteSite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.DeleteSite(r.Context(), chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ReorderSites replaces the whole site list, typically after a drag
// and drop on the grid.
func ReorderSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sites []domain.Site
		if !decodeJSON(w, r, &sites) {
			return
		}
		d.Store.ReorderSites(r.Context(), sites)
		respondJSON(w, http.StatusOK, d.Store.Sites())
	}
}
