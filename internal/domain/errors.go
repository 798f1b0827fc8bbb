package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Dice errors
	ErrMsgInvalidDie = "die value out of range"

	// Betting errors
	ErrMsgInvalidBet        = "invalid bet amount"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Round errors
	ErrMsgRoundNotFound = "round not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Dice errors
	ErrInvalidDie = errors.New(ErrMsgInvalidDie)

	// Betting errors
	ErrInvalidBet        = errors.New(ErrMsgInvalidBet)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Round errors
	ErrRoundNotFound = errors.New(ErrMsgRoundNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
