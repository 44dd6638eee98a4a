package handlers

import (
	"context"
	"net/http"
	"time"

	"newtab/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready       bool   `json:"ready"`
	Persistence string `json:"persistence"`
}

// Readyz reports readiness and which persistence backend is live. With
// redis configured, an unreachable server flips ready to false.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.RedisClient == nil {
			respondJSON(w, http.StatusOK, readyzResponse{Ready: true, Persistence: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := d.RedisClient.Ping(ctx).Err(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false, Persistence: "redis"})
			return
		}
		respondJSON(w, http.StatusOK, readyzResponse{Ready: true, Persistence: "redis"})
	}
}
