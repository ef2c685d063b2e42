package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitgym/fgms/internal/services"
)

// errorResponse writes the {"success": false, "error": ...} envelope.
// Service APIErrors carry their own status; anything else is a 500.
func (h *Handlers) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if apiErr, ok := err.(*services.APIError); ok {
		status = apiErr.Status
		message = apiErr.Message
	} else {
		h.factory.Logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("server_error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	}); encodeErr != nil {
		h.factory.Logger.Error().
			Err(encodeErr).
			Str("path", r.URL.Path).
			Msg("failed to write error response")
	}
}

func (h *Handlers) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	h.errorResponse(w, r, &services.APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	})
}
