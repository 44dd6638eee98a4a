package handlers

import (
	"net/http"

	"newtab/internal/domain"
	"newtab/internal/httpserver/deps"
)

// TestWebDAV probes the endpoint from the request body, so the UI can
// validate credentials before saving them.
func TestWebDAV(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg domain.WebDAVConfig
		if !decodeJSON(w, r, &cfg) {
			return
		}
		ok := d.Sync.TestConnection(r.Context(), cfg)
		respondJSON(w, http.StatusOK, map[string]bool{"ok": ok})
	}
}

// SyncUp uploads the current snapshot to the configured endpoint.
func SyncUp(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sync.Up(r.Context()); err != nil {
			respondError(w, http.StatusBadGateway, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": string(d.Sync.Status())})
	}
}

// SyncDown restores the snapshot from the configured endpoint.
func SyncDown(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sync.Down(r.Context()); err != nil {
			respondError(w, http.StatusBadGateway, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, d.Store.State())
	}
}

// SyncStatus reports the transient state of the last sync attempt.
func SyncStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": string(d.Sync.Status())})
	}
}
