package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/apperr"

	"github.com/rs/zerolog/log"
)

// errorResponse is the body produced by the centralized error responder.
type errorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError funnels every handler failure through one place: apperr
// errors keep their status, anything else becomes a 500. The message is
// passed through verbatim for the client to display.
func respondError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	respondJSON(w, status, errorResponse{
		Success:    false,
		StatusCode: status,
		Message:    err.Error(),
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}
