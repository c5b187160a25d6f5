package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages
const (
	// Shift errors
	ErrMsgShiftAlreadyActive = "a shift is already active"
	ErrMsgShiftNotOver       = "shift is not over yet"
	ErrMsgNoShiftToClaim     = "no completed shift to claim"

	// Research errors
	ErrMsgResearchActive   = "a research is already active"
	ErrMsgResearchMaxLevel = "research track is at max level"
	ErrMsgUnknownResearch  = "unknown research type"

	// Store errors
	ErrMsgItemNotFound        = "item not found"
	ErrMsgAlreadyOwned        = "already owned"
	ErrMsgPartnershipNotFound = "partnership not found"
	ErrMsgProductionNotFound  = "production not found"
	ErrMsgProductionJoined    = "a production is already joined"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Passive income errors
	ErrMsgNothingToCollect = "nothing to collect"

	// Daily reward errors
	ErrMsgRewardUnavailable = "daily reward not available"

	// Persistence / identity errors
	ErrMsgStateNotFound   = "state not found"
	ErrMsgInvalidIdentity = "invalid identity"
)

// Common domain errors.
// These errors should be used consistently across all layers of the engine.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
// Every transition that returns one of these leaves the state untouched.
var (
	// Shift errors
	ErrShiftAlreadyActive = errors.New(ErrMsgShiftAlreadyActive)
	ErrShiftNotOver       = errors.New(ErrMsgShiftNotOver)
	ErrNoShiftToClaim     = errors.New(ErrMsgNoShiftToClaim)

	// Research errors
	ErrResearchActive   = errors.New(ErrMsgResearchActive)
	ErrResearchMaxLevel = errors.New(ErrMsgResearchMaxLevel)
	ErrUnknownResearch  = errors.New(ErrMsgUnknownResearch)

	// Store errors
	ErrItemNotFound        = errors.New(ErrMsgItemNotFound)
	ErrAlreadyOwned        = errors.New(ErrMsgAlreadyOwned)
	ErrPartnershipNotFound = errors.New(ErrMsgPartnershipNotFound)
	ErrProductionNotFound  = errors.New(ErrMsgProductionNotFound)
	ErrProductionJoined    = errors.New(ErrMsgProductionJoined)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Passive income errors
	ErrNothingToCollect = errors.New(ErrMsgNothingToCollect)

	// Daily reward errors
	ErrRewardUnavailable = errors.New(ErrMsgRewardUnavailable)

	// Persistence / identity errors
	ErrStateNotFound   = errors.New(ErrMsgStateNotFound)
	ErrInvalidIdentity = errors.New(ErrMsgInvalidIdentity)
)
