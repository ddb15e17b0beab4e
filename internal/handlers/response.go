package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"food-ordering-backend/internal/apperr"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteServiceError translates the service error taxonomy to HTTP.
// Storage failures are logged in full but reported generically.
func WriteServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	case apperr.KindNotFound:
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case apperr.KindConflict:
		WriteError(w, http.StatusConflict, err.Error(), logger)
	case apperr.KindUnauthenticated:
		WriteError(w, http.StatusUnauthorized, err.Error(), logger)
	case apperr.KindForbidden:
		WriteError(w, http.StatusForbidden, err.Error(), logger)
	default:
		logger.Error("storage failure", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
