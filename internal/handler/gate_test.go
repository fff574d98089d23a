package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/gate"
)

const testAppID = "com.example.reels"

// peekChallenge reads the pending challenge straight from the service so a
// test can answer it; the HTTP body never carries the correct index.
func peekChallenge(t *testing.T, env *testEnv, appID string) *domain.Challenge {
	t.Helper()
	state, err := env.gate.GetState(context.Background(), appID)
	require.NoError(t, err)
	require.NotNil(t, state.Challenge)
	return state.Challenge
}

func TestHandleGateState_FreshApp(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/gate/"+testAppID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, testAppID, state.AppID)
	assert.Equal(t, gate.PhaseSelectTier, state.Phase)
	assert.Len(t, state.Tiers, 3)
	assert.Equal(t, 0, state.Balance)
}

func TestHandleSelectTier_IssuesChallenge(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, gate.PhaseChallenge, state.Phase)
	require.NotNil(t, state.Challenge)
	assert.Len(t, state.Challenge.Options, domain.OptionCount)
	assert.True(t, state.CanSwitchPath)

	// The correct index must never leak to clients.
	assert.NotContains(t, rec.Body.String(), "correct_answer")
}

func TestHandleSelectTier_UnknownTier(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", map[string]string{"tier": "nightmare"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequestError)
}

func TestHandleSubmitAnswer_CorrectUnlocks(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})

	ch := peekChallenge(t, env, testAppID)
	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/challenge/answer", AnswerRequest{
		ChallengeID: ch.ID,
		AnswerIndex: ch.CorrectAnswer,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, gate.PhaseSessionActive, state.Phase)
	require.NotNil(t, state.Result)
	assert.True(t, state.Result.Correct)
	assert.Equal(t, ch.PointsReward, state.Result.PointsEarned)
	require.NotNil(t, state.Session)
	assert.Equal(t, "5:00", state.Session.Countdown)
	assert.Equal(t, ch.PointsReward, state.Balance)
}

func TestHandleSubmitAnswer_WrongGetsFreshChallenge(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})

	ch := peekChallenge(t, env, testAppID)
	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/challenge/answer", AnswerRequest{
		ChallengeID: ch.ID,
		AnswerIndex: (ch.CorrectAnswer + 1) % domain.OptionCount,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, gate.PhaseChallenge, state.Phase)
	assert.Equal(t, 1, state.FailCount)
	require.NotNil(t, state.Result)
	assert.False(t, state.Result.Correct)
	require.NotNil(t, state.Challenge)
	assert.NotEqual(t, ch.ID, state.Challenge.ID)
}

func TestHandleSubmitAnswer_StaleChallengeID(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/challenge/answer", AnswerRequest{
		ChallengeID: "med_deadbeef",
		AnswerIndex: 0,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgStaleChallengeError)
}

func TestHandleSpend_Flow(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.economy.Earn(context.Background(), 30, "test_seed")
	require.NoError(t, err)

	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/path", SwitchPathRequest{Spend: true})
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, gate.PhaseSpend, state.Phase)
	require.Len(t, state.SpendOptions, 3)
	assert.Equal(t, 8, state.SpendOptions[0].Cost)
	assert.True(t, state.SpendOptions[0].Affordable)

	rec = env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/spend", SpendRequest{Minutes: 5})
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeState(t, rec)
	assert.Equal(t, gate.PhaseSessionActive, state.Phase)
	assert.Equal(t, 22, state.Balance)
}

func TestHandleSpend_AllowanceNotOffered(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.economy.Earn(context.Background(), 50, "test_seed")
	require.NoError(t, err)

	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/path", SwitchPathRequest{Spend: true})

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/spend", SpendRequest{Minutes: 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidAllowanceError)
}

func TestHandleSpend_EasyTierRejected(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierEasy})

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/spend", SpendRequest{Minutes: 5})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgBadTransitionError)
}

func TestHandleEndSession(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/tier", SelectTierRequest{Tier: domain.TierMedium})
	ch := peekChallenge(t, env, testAppID)
	env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/challenge/answer", AnswerRequest{
		ChallengeID: ch.ID,
		AnswerIndex: ch.CorrectAnswer,
	})

	rec := env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/session/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, gate.PhaseCooldown, state.Phase)
	require.NotNil(t, state.Cooldown)
	assert.Equal(t, "3:30", state.Cooldown.Countdown)

	rec = env.do(t, http.MethodPost, "/api/v1/gate/"+testAppID+"/session/end", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNoActiveSessionError)
}
