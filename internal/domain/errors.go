package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Encounter errors
	ErrMsgEncounterNotAlive = "boss is not alive"

	// Session errors
	ErrMsgPlayerNotInArena   = "player not in arena"
	ErrMsgInsufficientEnergy = "insufficient energy"

	// Reward errors
	ErrMsgRewardNotFound       = "reward not found"
	ErrMsgRewardAlreadyClaimed = "reward already claimed"

	// Arena lifecycle errors
	ErrMsgArenaClosed = "arena is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Persistence errors
	ErrMsgPersistenceUnavailable = "persistence unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Encounter errors
	ErrEncounterNotAlive = errors.New(ErrMsgEncounterNotAlive)

	// Session errors
	ErrPlayerNotInArena   = errors.New(ErrMsgPlayerNotInArena)
	ErrInsufficientEnergy = errors.New(ErrMsgInsufficientEnergy)

	// Reward errors
	ErrRewardNotFound       = errors.New(ErrMsgRewardNotFound)
	ErrRewardAlreadyClaimed = errors.New(ErrMsgRewardAlreadyClaimed)

	// Arena lifecycle errors
	ErrArenaClosed = errors.New(ErrMsgArenaClosed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Persistence errors
	ErrPersistenceUnavailable = errors.New(ErrMsgPersistenceUnavailable)
)
