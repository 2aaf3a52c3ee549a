package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps domain error codes onto HTTP statuses. Unknown errors
// are treated as store failures.
func statusForError(err error) int {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case model.ErrCodeProductNotFound,
		model.ErrCodeLineNotFound,
		model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidQuantity,
		model.ErrCodeEmptySelection,
		model.ErrCodeMissingField,
		model.ErrCodeValidation,
		model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeInvalidTransition,
		model.ErrCodeInsufficientStock:
		return http.StatusConflict
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError maps a service error to an HTTP response, hiding
// internal details for non-domain errors.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := statusForError(err)

	message := "internal server error"
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	writeError(w, status, message, logger)
}
