package economy

import (
	"context"
	"fmt"
	"math"

	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/logger"
	"github.com/focusnest/focusgate/internal/repository"
)

// EarnResult contains the result of an earn operation
type EarnResult struct {
	Success bool              `json:"success"`
	Earned  int               `json:"earned"`
	Capped  bool              `json:"capped"`
	State   domain.PlantState `json:"state"`
}

// Service defines the interface for Plant Minutes operations
type Service interface {
	GetState(ctx context.Context) (domain.PlantState, error)
	Earn(ctx context.Context, amount int, source string) (*EarnResult, error)
	EarnActivity(ctx context.Context, activityID string) (*EarnResult, error)
	Spend(ctx context.Context, amount int, source string) (domain.PlantState, error)
	GetGrowthStage(ctx context.Context) (domain.GrowthStage, error)
	GetNextStageProgress(ctx context.Context) (StageProgress, error)
	GetAge(ctx context.Context) (domain.PlantAge, error)
	SpendCost(allowanceMinutes int) int
	SpendOptions() []domain.SpendOption
	ActivityRewards() []domain.ActivityReward
}

type service struct {
	repo repository.Economy
	bus  event.Bus
	clk  clock.Clock
}

// NewService creates a new economy service
func NewService(repo repository.Economy, bus event.Bus, clk clock.Clock) Service {
	return &service{repo: repo, bus: bus, clk: clk}
}

// GetState returns the ledger normalized to the current calendar day.
// The daily counter resets lazily on read; balance and lifetime total are
// never touched by the rollover.
func (s *service) GetState(ctx context.Context) (domain.PlantState, error) {
	state, err := s.repo.GetPlantState(ctx)
	if err != nil {
		return domain.PlantState{}, fmt.Errorf("failed to get plant state: %w", err)
	}
	return s.rollover(state), nil
}

func (s *service) rollover(state domain.PlantState) domain.PlantState {
	today := s.clk.Now().Format(DateLayout)
	if state.LastResetDate != today {
		state.EarnedToday = 0
		state.LastResetDate = today
	}
	return state
}

// Earn credits amount Plant Minutes, clamped to what the daily cap still
// allows. A cap-exhausted day yields {success:false, earned:0} with no
// mutation; that is a message to the user, not an error.
func (s *service) Earn(ctx context.Context, amount int, source string) (*EarnResult, error) {
	log := logger.FromContext(ctx)

	if amount < 0 {
		return nil, fmt.Errorf("earn amount must be non-negative, got %d", amount)
	}

	state, err := s.GetState(ctx)
	if err != nil {
		return nil, err
	}

	remaining := DailyEarnCap - state.EarnedToday
	if remaining <= 0 {
		log.Info("Earn rejected, daily cap reached", "amount", amount, "earned_today", state.EarnedToday)
		return &EarnResult{Success: false, Earned: 0, Capped: true, State: state}, nil
	}

	actual := amount
	capped := false
	if actual > remaining {
		actual = remaining
		capped = true
	}

	stageBefore := StageForTotal(state.TotalLifetimeEarned)

	state.Balance += actual
	state.EarnedToday += actual
	state.TotalLifetimeEarned += actual

	if err := s.repo.SavePlantState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save plant state: %w", err)
	}

	log.Info("Plant minutes earned", "amount", actual, "capped", capped, "balance", state.Balance, "source", source)
	s.publish(ctx, event.NewMinutesEarnedEvent(actual, state.Balance, source, capped))

	if stageAfter := StageForTotal(state.TotalLifetimeEarned); stageAfter != stageBefore {
		log.Info("Growth stage advanced", "from", stageBefore, "to", stageAfter)
		s.publish(ctx, event.NewStageChangedEvent(stageBefore, stageAfter, state.TotalLifetimeEarned))
	}

	return &EarnResult{Success: true, Earned: actual, Capped: capped, State: state}, nil
}

// EarnActivity credits a cataloged external activity, enforcing its
// per-day usage limit on top of the global daily cap.
func (s *service) EarnActivity(ctx context.Context, activityID string) (*EarnResult, error) {
	var reward *domain.ActivityReward
	for i := range activityRewards {
		if activityRewards[i].ID == activityID {
			reward = &activityRewards[i]
			break
		}
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownActivity, activityID)
	}

	today := s.clk.Now().Format(DateLayout)
	count, err := s.repo.GetActivityCount(ctx, activityID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity count: %w", err)
	}
	if count >= reward.DailyCap {
		return nil, fmt.Errorf("%w: %s (%d/%d today)", domain.ErrActivityCapped, activityID, count, reward.DailyCap)
	}

	result, err := s.Earn(ctx, reward.Reward, activityID)
	if err != nil {
		return nil, err
	}
	if result.Success {
		if err := s.repo.IncrementActivityCount(ctx, activityID, today); err != nil {
			return nil, fmt.Errorf("failed to increment activity count: %w", err)
		}
	}
	return result, nil
}

// Spend debits amount from the balance. The lifetime total is untouched,
// so the growth stage never regresses from spending. Insufficient balance
// leaves the ledger byte-for-byte unchanged.
func (s *service) Spend(ctx context.Context, amount int, source string) (domain.PlantState, error) {
	log := logger.FromContext(ctx)

	if amount < 0 {
		return domain.PlantState{}, fmt.Errorf("spend amount must be non-negative, got %d", amount)
	}

	state, err := s.GetState(ctx)
	if err != nil {
		return domain.PlantState{}, err
	}

	if state.Balance < amount {
		log.Info("Spend rejected, insufficient balance", "amount", amount, "balance", state.Balance)
		return state, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, state.Balance)
	}

	state.Balance -= amount
	if err := s.repo.SavePlantState(ctx, state); err != nil {
		return domain.PlantState{}, fmt.Errorf("failed to save plant state: %w", err)
	}

	log.Info("Plant minutes spent", "amount", amount, "balance", state.Balance, "source", source)
	s.publish(ctx, event.NewMinutesSpentEvent(amount, state.Balance, source))

	return state, nil
}

func (s *service) GetGrowthStage(ctx context.Context) (domain.GrowthStage, error) {
	state, err := s.GetState(ctx)
	if err != nil {
		return "", err
	}
	return StageForTotal(state.TotalLifetimeEarned), nil
}

func (s *service) GetNextStageProgress(ctx context.Context) (StageProgress, error) {
	state, err := s.GetState(ctx)
	if err != nil {
		return StageProgress{}, err
	}
	return NextStageProgressForTotal(state.TotalLifetimeEarned), nil
}

func (s *service) GetAge(ctx context.Context) (domain.PlantAge, error) {
	state, err := s.GetState(ctx)
	if err != nil {
		return domain.PlantAge{}, err
	}
	return AgeForTotal(state.TotalLifetimeEarned), nil
}

// SpendCost returns the Plant Minutes price for an allowance length. Values
// off the curve fall back to ceil(minutes * 1.5).
func (s *service) SpendCost(allowanceMinutes int) int {
	for _, opt := range spendCosts {
		if opt.AllowanceMinutes == allowanceMinutes {
			return opt.Cost
		}
	}
	return int(math.Ceil(float64(allowanceMinutes) * FallbackCostMultiplier))
}

// SpendOptions returns the published allowance/cost pairs.
func (s *service) SpendOptions() []domain.SpendOption {
	out := make([]domain.SpendOption, len(spendCosts))
	copy(out, spendCosts)
	return out
}

// ActivityRewards returns the external earn catalog.
func (s *service) ActivityRewards() []domain.ActivityReward {
	out := make([]domain.ActivityReward, len(activityRewards))
	copy(out, activityRewards)
	return out
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", ev.Type, "error", err)
	}
}
