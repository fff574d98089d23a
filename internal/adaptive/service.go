package adaptive

import (
	"context"
	"fmt"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/logger"
	"github.com/focusnest/focusgate/internal/repository"
)

// Suggestion is the difficulty recommendation derived from the rolling
// performance window.
type Suggestion struct {
	Current        domain.Tier `json:"current"`
	Suggested      domain.Tier `json:"suggested"`
	SuccessRate    float64     `json:"success_rate"`
	AvgSolveTimeMs int64       `json:"avg_solve_time_ms"`
	SampleCount    int         `json:"sample_count"`
}

// Service tracks challenge outcomes and suggests tier adjustments.
// It only ever recommends; tier selection stays with the user.
type Service interface {
	Record(ctx context.Context, correct bool, solveTimeMs int64) error
	GetState(ctx context.Context) (domain.AdaptiveState, error)
	Suggest(ctx context.Context, current domain.Tier) (Suggestion, error)
}

type service struct {
	repo repository.Adaptive
}

// NewService creates a new adaptive difficulty service
func NewService(repo repository.Adaptive) Service {
	return &service{repo: repo}
}

// Record appends one graded outcome to the rolling window.
func (s *service) Record(ctx context.Context, correct bool, solveTimeMs int64) error {
	if err := s.repo.AppendResult(ctx, correct, solveTimeMs); err != nil {
		return fmt.Errorf("failed to record challenge outcome: %w", err)
	}
	logger.FromContext(ctx).Debug("Challenge outcome recorded", "correct", correct, "solve_time_ms", solveTimeMs)
	return nil
}

func (s *service) GetState(ctx context.Context) (domain.AdaptiveState, error) {
	state, err := s.repo.GetAdaptiveState(ctx)
	if err != nil {
		return domain.AdaptiveState{}, fmt.Errorf("failed to get adaptive state: %w", err)
	}
	return state, nil
}

// Suggest applies the promotion/demotion rules to the current window.
// Fewer than MinSamples outcomes always keep the current tier.
func (s *service) Suggest(ctx context.Context, current domain.Tier) (Suggestion, error) {
	if !current.IsValid() {
		return Suggestion{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, current)
	}

	state, err := s.GetState(ctx)
	if err != nil {
		return Suggestion{}, err
	}

	rate := SuccessRate(state)
	suggested := current
	if len(state.Results) >= MinSamples {
		switch {
		case rate > PromoteThreshold:
			suggested = current.Promote()
		case rate < DemoteThreshold:
			suggested = current.Demote()
		}
	}

	return Suggestion{
		Current:        current,
		Suggested:      suggested,
		SuccessRate:    rate,
		AvgSolveTimeMs: AvgSolveTime(state),
		SampleCount:    len(state.Results),
	}, nil
}

// SuccessRate returns the fraction of correct outcomes in the window, or
// EmptyWindowRate when nothing has been recorded yet.
func SuccessRate(state domain.AdaptiveState) float64 {
	if len(state.Results) == 0 {
		return EmptyWindowRate
	}
	correct := 0
	for _, r := range state.Results {
		if r {
			correct++
		}
	}
	return float64(correct) / float64(len(state.Results))
}

// AvgSolveTime returns the mean solve time in the window, 0 when empty.
func AvgSolveTime(state domain.AdaptiveState) int64 {
	if len(state.SolveTimes) == 0 {
		return 0
	}
	var sum int64
	for _, t := range state.SolveTimes {
		sum += t
	}
	return sum / int64(len(state.SolveTimes))
}
