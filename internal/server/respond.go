package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spliteasy/spliteasy/internal/apperr"
)

// errorBody is the JSON shape of every failure response.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps an error kind to its HTTP status and writes the JSON
// error body. Unclassified errors are reported as a generic 500 so
// internal details never reach the caller.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrInvalidGroupState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrInconsistentData):
		status = http.StatusInternalServerError
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
		return
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}

// decodeJSON decodes the request body into dst, rejecting unparseable
// bodies as validation failures.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", apperr.ErrValidation)
	}
	return nil
}
