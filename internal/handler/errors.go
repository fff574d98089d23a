package handler

import (
	"errors"
	"net/http"

	"github.com/focusnest/focusgate/internal/domain"
)

// User-facing error messages for service errors. The overlay shows these
// verbatim, so they name the next action, not the internal cause.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestBody  = "Invalid request body"

	// Economy messages
	ErrMsgNotEnoughMinutesError = "Not enough Plant Minutes"
	ErrMsgUnknownActivityError  = "Unknown activity"
	ErrMsgActivityCappedError   = "That activity has hit today's limit"

	// Gate messages
	ErrMsgChallengeFirstError    = "Solve the challenge before spending"
	ErrMsgLockedOutError         = "Locked out after repeated failures. Take a break."
	ErrMsgOnCooldownError        = "This app is cooling down. Try again later"
	ErrMsgNoChallengeError       = "No challenge is pending"
	ErrMsgStaleChallengeError    = "That challenge has expired. A new one is ready"
	ErrMsgBadTransitionError     = "That action is not available right now"
	ErrMsgUnknownTierError       = "Unknown tier"
	ErrMsgInvalidAllowanceError  = "That session length is not offered on this tier"
	ErrMsgNoActiveSessionError   = "No session is running for this app"
	ErrMsgBridgeUnavailableError = "App controls are not available on this platform"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMinutesError
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusBadRequest, ErrMsgUnknownActivityError
	case errors.Is(err, domain.ErrActivityCapped):
		return http.StatusTooManyRequests, ErrMsgActivityCappedError
	case errors.Is(err, domain.ErrChallengeRequired):
		return http.StatusConflict, ErrMsgChallengeFirstError
	case errors.Is(err, domain.ErrLockedOut):
		return http.StatusTooManyRequests, ErrMsgLockedOutError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrNoChallenge):
		return http.StatusConflict, ErrMsgNoChallengeError
	case errors.Is(err, domain.ErrChallengeMismatch):
		return http.StatusConflict, ErrMsgStaleChallengeError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgBadTransitionError
	case errors.Is(err, domain.ErrUnknownTier):
		return http.StatusBadRequest, ErrMsgUnknownTierError
	case errors.Is(err, domain.ErrInvalidAllowance):
		return http.StatusBadRequest, ErrMsgInvalidAllowanceError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgNoActiveSessionError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps and writes a service-layer error.
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
