package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/logger"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// InsufficientEnergyResponse rejects a tap batch while still reporting the
// player's current balance so clients can back off accurately.
type InsufficientEnergyResponse struct {
	Error           string `json:"error"`
	EnergyRemaining int    `json:"energyRemaining"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode via a pooled buffer so a marshal failure cannot corrupt an
	// already-started response body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
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

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Raid messages
	ErrMsgBossNotAliveError  = "The boss is not attackable right now"
	ErrMsgNotInArenaError    = "Join the raid before attacking"
	ErrMsgNotEnoughEnergyErr = "Not enough energy"

	// Reward messages
	ErrMsgRewardNotFoundError = "Reward not found"
	ErrMsgAlreadyClaimedError = "Reward was already claimed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrEncounterNotAlive):
		return http.StatusConflict, ErrMsgBossNotAliveError
	case errors.Is(err, domain.ErrPlayerNotInArena):
		return http.StatusBadRequest, ErrMsgNotInArenaError
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return http.StatusBadRequest, ErrMsgNotEnoughEnergyErr
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrArenaClosed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrPersistenceUnavailable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Wrapped errors with a domain error as the base resolve through
	// errors.Is above; anything else stays generic.
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
