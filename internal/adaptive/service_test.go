package adaptive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/domain"
)

// memoryAdaptive is an in-memory Adaptive repository for tests.
type memoryAdaptive struct {
	state domain.AdaptiveState
}

func (m *memoryAdaptive) GetAdaptiveState(context.Context) (domain.AdaptiveState, error) {
	return m.state, nil
}

func (m *memoryAdaptive) AppendResult(_ context.Context, correct bool, solveTimeMs int64) error {
	m.state.Results = append(m.state.Results, correct)
	m.state.SolveTimes = append(m.state.SolveTimes, solveTimeMs)
	if n := len(m.state.Results); n > domain.AdaptiveWindowSize {
		m.state.Results = m.state.Results[n-domain.AdaptiveWindowSize:]
		m.state.SolveTimes = m.state.SolveTimes[n-domain.AdaptiveWindowSize:]
	}
	return nil
}

func record(t *testing.T, svc Service, outcomes ...bool) {
	t.Helper()
	for _, correct := range outcomes {
		require.NoError(t, svc.Record(context.Background(), correct, 4000))
	}
}

func TestSuggest_EmptyWindowIsNeutral(t *testing.T) {
	svc := NewService(&memoryAdaptive{})

	sug, err := svc.Suggest(context.Background(), domain.TierMedium)
	require.NoError(t, err)
	assert.Equal(t, domain.TierMedium, sug.Suggested)
	assert.Equal(t, EmptyWindowRate, sug.SuccessRate)
	assert.Zero(t, sug.SampleCount)
}

func TestSuggest_TooFewSamplesNeverMoves(t *testing.T) {
	svc := NewService(&memoryAdaptive{})
	record(t, svc, true, true, true, true) // 4 of 4 correct

	sug, err := svc.Suggest(context.Background(), domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, domain.TierEasy, sug.Suggested)
	assert.Equal(t, 1.0, sug.SuccessRate)
	assert.Equal(t, 4, sug.SampleCount)
}

func TestSuggest_PromotesAboveThreshold(t *testing.T) {
	svc := NewService(&memoryAdaptive{})
	record(t, svc, true, true, true, true, true) // 5 of 5

	sug, err := svc.Suggest(context.Background(), domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, domain.TierMedium, sug.Suggested)

	sug, err = svc.Suggest(context.Background(), domain.TierMedium)
	require.NoError(t, err)
	assert.Equal(t, domain.TierHard, sug.Suggested)

	// Top tier has nowhere to go.
	sug, err = svc.Suggest(context.Background(), domain.TierHard)
	require.NoError(t, err)
	assert.Equal(t, domain.TierHard, sug.Suggested)
}

func TestSuggest_ExactThresholdHolds(t *testing.T) {
	svc := NewService(&memoryAdaptive{})
	record(t, svc, true, true, true, true, false) // 0.8 exactly

	sug, err := svc.Suggest(context.Background(), domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, domain.TierEasy, sug.Suggested, "rate must exceed 0.8 to promote")
}

func TestSuggest_DemotesBelowThreshold(t *testing.T) {
	svc := NewService(&memoryAdaptive{})
	record(t, svc, false, false, false, false, true) // 0.2

	sug, err := svc.Suggest(context.Background(), domain.TierHard)
	require.NoError(t, err)
	assert.Equal(t, domain.TierMedium, sug.Suggested)

	sug, err = svc.Suggest(context.Background(), domain.TierMedium)
	require.NoError(t, err)
	assert.Equal(t, domain.TierEasy, sug.Suggested)

	// Bottom tier has nowhere to fall.
	sug, err = svc.Suggest(context.Background(), domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, domain.TierEasy, sug.Suggested)
}

func TestSuggest_WindowSlides(t *testing.T) {
	svc := NewService(&memoryAdaptive{})
	// Five failures, then ten successes push the failures out.
	record(t, svc, false, false, false, false, false)
	record(t, svc, true, true, true, true, true, true, true, true, true, true)

	sug, err := svc.Suggest(context.Background(), domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sug.SuccessRate)
	assert.Equal(t, domain.AdaptiveWindowSize, sug.SampleCount)
	assert.Equal(t, domain.TierMedium, sug.Suggested)
}

func TestSuggest_UnknownTier(t *testing.T) {
	svc := NewService(&memoryAdaptive{})

	_, err := svc.Suggest(context.Background(), domain.Tier("nightmare"))
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestAvgSolveTime(t *testing.T) {
	assert.Zero(t, AvgSolveTime(domain.AdaptiveState{}))
	assert.Equal(t, int64(3000), AvgSolveTime(domain.AdaptiveState{
		SolveTimes: []int64{2000, 3000, 4000},
	}))
}
