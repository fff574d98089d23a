package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/economy"
)

func TestHandlePlantState_FreshPlant(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/plant", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Balance)
	assert.Equal(t, economy.DailyEarnCap, resp.DailyCap)
	assert.Equal(t, domain.StageSeed, resp.Stage)
	assert.Equal(t, "Seed", resp.StageLabel)
	assert.Len(t, resp.SpendOptions, 3)
	assert.Len(t, resp.ActivityRewards, 4)
}

func TestHandlePlantState_ReflectsEarnings(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.economy.Earn(context.Background(), 100, "focus_timer")
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/v1/plant", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Balance)
	assert.Equal(t, 100, resp.EarnedToday)
	assert.Equal(t, 100, resp.TotalLifetimeEarned)
	assert.Equal(t, domain.StageSeed, resp.Stage)
	assert.InDelta(t, 0.5, resp.Progress.Progress, 0.001)
}

func TestHandleEarn(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/plant/earn", EarnRequest{Amount: 30, Source: "focus_timer"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result economy.EarnResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 30, result.Earned)
	assert.False(t, result.Capped)
	assert.Equal(t, 30, result.State.Balance)
}

func TestHandleEarn_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/plant/earn", map[string]interface{}{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequestError)
}

func TestHandleEarnActivity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/plant/activity", ActivityRequest{ActivityID: "reflection"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result economy.EarnResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 15, result.Earned)

	// Reflection caps at one use per day.
	rec = env.do(t, http.MethodPost, "/api/v1/plant/activity", ActivityRequest{ActivityID: "reflection"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgActivityCappedError)
}

func TestHandleEarnActivity_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/plant/activity", ActivityRequest{ActivityID: "doomscrolling"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgUnknownActivityError)
}
