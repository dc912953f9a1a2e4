package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wifi-on-ice/dashboard/models"
	"github.com/wifi-on-ice/dashboard/repository"
)

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeSourceError maps a measurement load failure to a status code.
// Store failures are 503, undecodable data is 500.
func writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidColorFormat):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Measurement data contains an invalid color",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
	case errors.Is(err, repository.ErrDataUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "Measurement data unavailable",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to load measurements",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
	}
}
