package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Kombinat_Go/internal/domain"
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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
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
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Shift messages
	ErrMsgShiftActiveError   = "You are already on a shift"
	ErrMsgShiftNotOverError  = "The shift is not over yet"
	ErrMsgNoShiftError       = "There is no completed shift to claim"

	// Research messages
	ErrMsgResearchActiveError   = "A research is already in progress"
	ErrMsgResearchMaxLevelError = "This research is already at max level"
	ErrMsgUnknownResearchError  = "Unknown research type"

	// Store messages
	ErrMsgItemNotFoundError        = "Item not found"
	ErrMsgAlreadyOwnedError        = "You already own that"
	ErrMsgPartnershipNotFoundErr   = "Partnership not found"
	ErrMsgProductionNotFoundError  = "Production not found"
	ErrMsgProductionJoinedError    = "You have already joined a production"
	ErrMsgNotEnoughMoneyError      = "Not enough money"

	// Income and reward messages
	ErrMsgNothingToCollectError  = "Nothing to collect yet"
	ErrMsgRewardUnavailableError = "Daily reward is not available yet"

	// Identity messages
	ErrMsgInvalidIdentityError = "Login could not be verified"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrShiftAlreadyActive):
		return http.StatusConflict, ErrMsgShiftActiveError
	case errors.Is(err, domain.ErrShiftNotOver):
		return http.StatusConflict, ErrMsgShiftNotOverError
	case errors.Is(err, domain.ErrNoShiftToClaim):
		return http.StatusConflict, ErrMsgNoShiftError
	case errors.Is(err, domain.ErrResearchActive):
		return http.StatusConflict, ErrMsgResearchActiveError
	case errors.Is(err, domain.ErrResearchMaxLevel):
		return http.StatusConflict, ErrMsgResearchMaxLevelError
	case errors.Is(err, domain.ErrUnknownResearch):
		return http.StatusBadRequest, ErrMsgUnknownResearchError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrPartnershipNotFound):
		return http.StatusBadRequest, ErrMsgPartnershipNotFoundErr
	case errors.Is(err, domain.ErrProductionNotFound):
		return http.StatusBadRequest, ErrMsgProductionNotFoundError
	case errors.Is(err, domain.ErrProductionJoined):
		return http.StatusConflict, ErrMsgProductionJoinedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrNothingToCollect):
		return http.StatusConflict, ErrMsgNothingToCollectError
	case errors.Is(err, domain.ErrRewardUnavailable):
		return http.StatusConflict, ErrMsgRewardUnavailableError
	case errors.Is(err, domain.ErrInvalidIdentity):
		return http.StatusUnauthorized, ErrMsgInvalidIdentityError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped error response
func respondServiceError(w http.ResponseWriter, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode == http.StatusInternalServerError {
		slog.Error(opName+" failed", "error", err)
	}
	respondError(w, statusCode, userMsg)
}
