package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler reports store connectivity
type HealthHandler struct {
	source MeasurementSource
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(source MeasurementSource) *HealthHandler {
	return &HealthHandler{source: source}
}

// GetHealth handles GET /health with a database connectivity test
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
			"error":     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}

// GetHealthz handles GET /healthz (liveness only)
func (h *HealthHandler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
