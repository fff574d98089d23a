package handler

import (
	"net/http"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/economy"
)

// PlantResponse is the whole plant picture: ledger, stage, and age.
type PlantResponse struct {
	Balance             int                    `json:"balance"`
	EarnedToday         int                    `json:"earned_today"`
	DailyCap            int                    `json:"daily_cap"`
	TotalLifetimeEarned int                    `json:"total_lifetime_earned"`
	Stage               domain.GrowthStage     `json:"stage"`
	StageLabel          string                 `json:"stage_label"`
	Progress            economy.StageProgress  `json:"progress"`
	Age                 domain.PlantAge        `json:"age"`
	SpendOptions        []domain.SpendOption   `json:"spend_options"`
	ActivityRewards     []domain.ActivityReward `json:"activity_rewards"`
}

// EarnRequest credits Plant Minutes from a client-side source.
type EarnRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Source string `json:"source" validate:"required"`
}

// ActivityRequest credits a cataloged activity reward.
type ActivityRequest struct {
	ActivityID string `json:"activity_id" validate:"required"`
}

// HandlePlantState returns the plant state
// @Summary Plant state
// @Description Returns the Plant Minutes ledger, growth stage, progress and display age
// @Tags plant
// @Produce json
// @Success 200 {object} PlantResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/plant [get]
func (h *Handler) HandlePlantState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := h.economy.GetState(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	progress, err := h.economy.GetNextStageProgress(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	age, err := h.economy.GetAge(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, PlantResponse{
		Balance:             state.Balance,
		EarnedToday:         state.EarnedToday,
		DailyCap:            economy.DailyEarnCap,
		TotalLifetimeEarned: state.TotalLifetimeEarned,
		Stage:               progress.CurrentStage,
		StageLabel:          domain.StageLabels[progress.CurrentStage],
		Progress:            progress,
		Age:                 age,
		SpendOptions:        h.economy.SpendOptions(),
		ActivityRewards:     h.economy.ActivityRewards(),
	})
}

// HandleEarn credits Plant Minutes
// @Summary Earn Plant Minutes
// @Description Credits minutes against the daily cap; a capped day returns success=false, not an error
// @Tags plant
// @Accept json
// @Produce json
// @Param request body EarnRequest true "Amount and source"
// @Success 200 {object} economy.EarnResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plant/earn [post]
func (h *Handler) HandleEarn(w http.ResponseWriter, r *http.Request) {
	var req EarnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.economy.Earn(r.Context(), req.Amount, req.Source)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleEarnActivity credits a cataloged activity
// @Summary Earn from activity
// @Description Credits a cataloged activity reward, enforcing its per-day usage limit
// @Tags plant
// @Accept json
// @Produce json
// @Param request body ActivityRequest true "Activity identifier"
// @Success 200 {object} economy.EarnResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/plant/activity [post]
func (h *Handler) HandleEarnActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.economy.EarnActivity(r.Context(), req.ActivityID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
