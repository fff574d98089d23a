package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient plant minutes"
	ErrMsgDailyCapReached   = "daily earn cap reached"

	// Gate errors
	ErrMsgChallengeRequired = "challenge required first"
	ErrMsgLockedOut         = "locked out after repeated failures"
	ErrMsgOnCooldown        = "app is cooling down"
	ErrMsgNoChallenge       = "no challenge pending"
	ErrMsgChallengeMismatch = "challenge no longer current"
	ErrMsgInvalidTransition = "invalid gate transition"

	// Tier/session errors
	ErrMsgUnknownTier      = "unknown tier"
	ErrMsgInvalidAllowance = "allowance not offered by tier"
	ErrMsgSessionNotFound  = "no active session"
	ErrMsgUnknownActivity  = "unknown activity"
	ErrMsgActivityCapped   = "activity daily limit reached"
)

// Common domain errors.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrDailyCapReached   = errors.New(ErrMsgDailyCapReached)

	// Gate errors
	ErrChallengeRequired = errors.New(ErrMsgChallengeRequired)
	ErrLockedOut         = errors.New(ErrMsgLockedOut)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrNoChallenge       = errors.New(ErrMsgNoChallenge)
	ErrChallengeMismatch = errors.New(ErrMsgChallengeMismatch)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// Tier/session errors
	ErrUnknownTier      = errors.New(ErrMsgUnknownTier)
	ErrInvalidAllowance = errors.New(ErrMsgInvalidAllowance)
	ErrSessionNotFound  = errors.New(ErrMsgSessionNotFound)
	ErrUnknownActivity  = errors.New(ErrMsgUnknownActivity)
	ErrActivityCapped   = errors.New(ErrMsgActivityCapped)
)
