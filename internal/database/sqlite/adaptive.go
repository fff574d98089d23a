package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/repository"
)

// AdaptiveRepo persists the rolling challenge-performance window.
type AdaptiveRepo struct {
	db *sql.DB
}

// NewAdaptiveRepo creates an Adaptive repository backed by db.
func NewAdaptiveRepo(db *sql.DB) repository.Adaptive {
	return &AdaptiveRepo{db: db}
}

const (
	sqlSelectAdaptiveWindow = `
		SELECT correct, solve_time_ms FROM (
			SELECT id, correct, solve_time_ms
			FROM adaptive_results
			ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`

	sqlInsertAdaptiveResult = `
		INSERT INTO adaptive_results (correct, solve_time_ms, recorded_at)
		VALUES (?, ?, ?)
	`

	sqlTrimAdaptiveResults = `
		DELETE FROM adaptive_results
		WHERE id NOT IN (SELECT id FROM adaptive_results ORDER BY id DESC LIMIT ?)
	`
)

// GetAdaptiveState returns the newest results, oldest first.
func (r *AdaptiveRepo) GetAdaptiveState(ctx context.Context) (domain.AdaptiveState, error) {
	rows, err := r.db.QueryContext(ctx, sqlSelectAdaptiveWindow, domain.AdaptiveWindowSize)
	if err != nil {
		return domain.AdaptiveState{}, fmt.Errorf("get adaptive state: %w", err)
	}
	defer rows.Close()

	var state domain.AdaptiveState
	for rows.Next() {
		var (
			correct     int
			solveTimeMs int64
		)
		if err := rows.Scan(&correct, &solveTimeMs); err != nil {
			return domain.AdaptiveState{}, fmt.Errorf("get adaptive state: scan: %w", err)
		}
		state.Results = append(state.Results, correct == 1)
		state.SolveTimes = append(state.SolveTimes, solveTimeMs)
	}
	if err := rows.Err(); err != nil {
		return domain.AdaptiveState{}, fmt.Errorf("get adaptive state: rows: %w", err)
	}
	return state, nil
}

// AppendResult inserts one outcome and trims history to the window size.
func (r *AdaptiveRepo) AppendResult(ctx context.Context, correct bool, solveTimeMs int64) error {
	c := 0
	if correct {
		c = 1
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, sqlInsertAdaptiveResult, c, solveTimeMs, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("append result: insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlTrimAdaptiveResults, domain.AdaptiveWindowSize); err != nil {
		return fmt.Errorf("append result: trim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append result: commit: %w", err)
	}
	return nil
}
