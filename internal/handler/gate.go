package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/focusnest/focusgate/internal/domain"
)

// SelectTierRequest is the body for choosing a friction tier.
type SelectTierRequest struct {
	Tier     domain.Tier `json:"tier" validate:"required,oneof=easy medium hard"`
	Remember bool        `json:"remember"`
}

// SwitchPathRequest flips between the challenge and spend paths.
type SwitchPathRequest struct {
	Spend bool `json:"spend"`
}

// AnswerRequest is the body for submitting a challenge answer.
type AnswerRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required"`
	AnswerIndex int    `json:"answer_index" validate:"gte=0,lt=4"`
}

// SpendRequest buys an allowance with Plant Minutes.
type SpendRequest struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// HandleGateState returns the gate state for one app
// @Summary Gate state
// @Description Returns the current unlock phase and everything the overlay needs to render it
// @Tags gate
// @Produce json
// @Param appID path string true "Package identifier"
// @Success 200 {object} gate.State
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/gate/{appID} [get]
func (h *Handler) HandleGateState(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	state, err := h.gate.GetState(r.Context(), appID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSelectTier opens an unlock cycle on a tier
// @Summary Select tier
// @Description Starts a fresh unlock cycle on the chosen tier, optionally remembering it for the app
// @Tags gate
// @Accept json
// @Produce json
// @Param appID path string true "Package identifier"
// @Param request body SelectTierRequest true "Tier selection"
// @Success 200 {object} gate.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/gate/{appID}/tier [post]
func (h *Handler) HandleSelectTier(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	var req SelectTierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.gate.SelectTier(r.Context(), appID, req.Tier, req.Remember)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSwitchPath flips between challenge and spend
// @Summary Switch unlock path
// @Description On tiers that allow it, switches between solving a challenge and spending Plant Minutes
// @Tags gate
// @Accept json
// @Produce json
// @Param appID path string true "Package identifier"
// @Param request body SwitchPathRequest true "Target path"
// @Success 200 {object} gate.State
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gate/{appID}/path [post]
func (h *Handler) HandleSwitchPath(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	var req SwitchPathRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.gate.SwitchPath(r.Context(), appID, req.Spend)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSubmitAnswer grades a challenge answer
// @Summary Submit challenge answer
// @Description Grades the pending challenge; late answers count as failures
// @Tags gate
// @Accept json
// @Produce json
// @Param appID path string true "Package identifier"
// @Param request body AnswerRequest true "Selected option"
// @Success 200 {object} gate.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gate/{appID}/challenge/answer [post]
func (h *Handler) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.gate.SubmitAnswer(r.Context(), appID, req.ChallengeID, req.AnswerIndex)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSpend buys an allowance
// @Summary Spend Plant Minutes
// @Description Buys a timed allowance for the app and starts the session
// @Tags gate
// @Accept json
// @Produce json
// @Param appID path string true "Package identifier"
// @Param request body SpendRequest true "Allowance length"
// @Success 200 {object} gate.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gate/{appID}/spend [post]
func (h *Handler) HandleSpend(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	var req SpendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.gate.Spend(r.Context(), appID, req.Minutes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleEndSession closes the running session
// @Summary End session
// @Description Ends the app's session early; the tier cooldown still applies
// @Tags gate
// @Produce json
// @Param appID path string true "Package identifier"
// @Success 200 {object} gate.State
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/gate/{appID}/session/end [post]
func (h *Handler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	state, err := h.gate.EndSession(r.Context(), appID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
