// Package sqlite implements the repository interfaces on the local SQLite
// store opened by the database package.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/repository"
)

// EconomyRepo persists the Plant Minutes ledger.
type EconomyRepo struct {
	db *sql.DB
}

// NewEconomyRepo creates an Economy repository backed by db.
func NewEconomyRepo(db *sql.DB) repository.Economy {
	return &EconomyRepo{db: db}
}

const (
	sqlSelectPlantState = `
		SELECT balance, earned_today, total_lifetime_earned, last_reset_date
		FROM plant_state WHERE id = 1
	`

	sqlUpsertPlantState = `
		INSERT INTO plant_state (id, balance, earned_today, total_lifetime_earned, last_reset_date)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			balance = excluded.balance,
			earned_today = excluded.earned_today,
			total_lifetime_earned = excluded.total_lifetime_earned,
			last_reset_date = excluded.last_reset_date
	`

	sqlSelectActivityCount = `
		SELECT count FROM activity_counts WHERE activity_id = ? AND date = ?
	`

	sqlUpsertActivityCount = `
		INSERT INTO activity_counts (activity_id, date, count)
		VALUES (?, ?, 1)
		ON CONFLICT (activity_id, date) DO UPDATE SET count = count + 1
	`
)

// GetPlantState returns the stored ledger, or zero defaults before first save.
func (r *EconomyRepo) GetPlantState(ctx context.Context) (domain.PlantState, error) {
	var state domain.PlantState
	err := r.db.QueryRowContext(ctx, sqlSelectPlantState).Scan(
		&state.Balance,
		&state.EarnedToday,
		&state.TotalLifetimeEarned,
		&state.LastResetDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PlantState{}, nil
		}
		return domain.PlantState{}, fmt.Errorf("get plant state: %w", err)
	}
	return state, nil
}

// SavePlantState upserts the single ledger row.
func (r *EconomyRepo) SavePlantState(ctx context.Context, state domain.PlantState) error {
	_, err := r.db.ExecContext(ctx, sqlUpsertPlantState,
		state.Balance,
		state.EarnedToday,
		state.TotalLifetimeEarned,
		state.LastResetDate,
	)
	if err != nil {
		return fmt.Errorf("save plant state: %w", err)
	}
	return nil
}

// GetActivityCount returns how many times the activity earned on date.
func (r *EconomyRepo) GetActivityCount(ctx context.Context, activityID, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, sqlSelectActivityCount, activityID, date).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get activity count: %w", err)
	}
	return count, nil
}

// IncrementActivityCount bumps the per-day counter for the activity.
func (r *EconomyRepo) IncrementActivityCount(ctx context.Context, activityID, date string) error {
	_, err := r.db.ExecContext(ctx, sqlUpsertActivityCount, activityID, date)
	if err != nil {
		return fmt.Errorf("increment activity count: %w", err)
	}
	return nil
}
