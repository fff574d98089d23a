package handler

import (
	"net/http"

	"github.com/focusnest/focusgate/internal/domain"
)

// HandleAdaptiveSuggestion returns a difficulty suggestion
// @Summary Difficulty suggestion
// @Description Suggests a tier based on the rolling window of challenge outcomes
// @Tags adaptive
// @Produce json
// @Param current query string true "Current tier" Enums(easy, medium, hard)
// @Success 200 {object} adaptive.Suggestion
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/adaptive/suggestion [get]
func (h *Handler) HandleAdaptiveSuggestion(w http.ResponseWriter, r *http.Request) {
	current := domain.Tier(r.URL.Query().Get("current"))
	if !current.IsValid() {
		respondError(w, http.StatusBadRequest, ErrMsgUnknownTierError)
		return
	}

	suggestion, err := h.adaptive.Suggest(r.Context(), current)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, suggestion)
}
