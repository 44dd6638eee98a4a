package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"newtab/internal/httpserver/deps"
)

// maxImportBytes caps uploaded backups.
const maxImportBytes = 4 << 20

// ExportData serves the snapshot as a downloadable backup file.
func ExportData(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := d.Store.ExportData()

		filename := fmt.Sprintf("newtab-backup-%s.json", d.TimeNow().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(snap)
	}
}

// ImportData replaces sites, groups and settings from an uploaded backup.
// A payload that fails to parse leaves the store untouched.
func ImportData(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read body")
			return
		}

		if err := d.Store.ImportData(r.Context(), body); err != nil {
			respondError(w, http.StatusBadRequest, "invalid backup file")
			return
		}
		respondJSON(w, http.StatusOK, d.Store.State())
	}
}

func ResetAll(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ResetAll(r.Context())
		respondJSON(w, http.StatusOK, d.Store.State())
	}
}
