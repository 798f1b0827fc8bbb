package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgMissingQueryParam   = "Missing %s query parameter"

	ErrMsgInvalidBetError        = "Bet must be a positive amount"
	ErrMsgInsufficientFundsError = "Not enough money"
	ErrMsgInvalidDieError        = "Die values must be between 1 and 6"
	ErrMsgRoundNotFoundError     = "Round not found"
	ErrMsgInvalidRoundID         = "Invalid round ID"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrInvalidDie):
		return http.StatusBadRequest, ErrMsgInvalidDieError
	case errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound, ErrMsgRoundNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
