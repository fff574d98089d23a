package repository

import (
	"context"

	"github.com/focusnest/focusgate/internal/domain"
)

// Economy defines the interface for Plant Minutes persistence.
// A single ledger row exists per device; GetPlantState returns zero-valued
// defaults (with lastResetDate empty) when nothing has been stored yet.
type Economy interface {
	GetPlantState(ctx context.Context) (domain.PlantState, error)
	SavePlantState(ctx context.Context, state domain.PlantState) error

	// Activity earn bookkeeping for the external reward hook: how many times
	// an activity credited minutes on the given calendar date.
	GetActivityCount(ctx context.Context, activityID, date string) (int, error)
	IncrementActivityCount(ctx context.Context, activityID, date string) error
}
