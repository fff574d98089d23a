package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/repository"
)

// SessionRepo persists sessions, cooldowns and tier preferences.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a Sessions repository backed by db.
func NewSessionRepo(db *sql.DB) repository.Sessions {
	return &SessionRepo{db: db}
}

const (
	sqlSelectActiveSession = `
		SELECT app_id, start_time_ms, allowed_seconds, tier
		FROM sessions
		WHERE app_id = ? AND active = 1
		ORDER BY id DESC LIMIT 1
	`

	sqlDeactivateSessions = `UPDATE sessions SET active = 0 WHERE app_id = ? AND active = 1`

	sqlInsertSession = `
		INSERT INTO sessions (app_id, start_time_ms, allowed_seconds, tier, active)
		VALUES (?, ?, ?, ?, ?)
	`

	sqlSelectCooldown = `SELECT app_id, ends_at_ms, tier, lockout FROM cooldowns WHERE app_id = ?`

	sqlUpsertCooldown = `
		INSERT INTO cooldowns (app_id, ends_at_ms, tier, lockout)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (app_id) DO UPDATE SET
			ends_at_ms = excluded.ends_at_ms,
			tier = excluded.tier,
			lockout = excluded.lockout
	`

	sqlDeleteCooldown = `DELETE FROM cooldowns WHERE app_id = ?`

	sqlSelectPreferredTier = `SELECT tier FROM tier_preferences WHERE app_id = ?`

	sqlUpsertPreferredTier = `
		INSERT INTO tier_preferences (app_id, tier)
		VALUES (?, ?)
		ON CONFLICT (app_id) DO UPDATE SET tier = excluded.tier
	`
)

// GetActiveSession returns the active session for the app, or nil.
func (r *SessionRepo) GetActiveSession(ctx context.Context, appID string) (*domain.Session, error) {
	var (
		session     domain.Session
		startTimeMs int64
	)
	err := r.db.QueryRowContext(ctx, sqlSelectActiveSession, appID).Scan(
		&session.AppID,
		&startTimeMs,
		&session.AllowedSeconds,
		&session.TierUsed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	session.StartTime = time.UnixMilli(startTimeMs)
	session.Active = true
	return &session, nil
}

// SaveSession deactivates any prior active session for the app and inserts
// the new one in a single transaction.
func (r *SessionRepo) SaveSession(ctx context.Context, session domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, sqlDeactivateSessions, session.AppID); err != nil {
		return fmt.Errorf("save session: deactivate prior: %w", err)
	}

	active := 0
	if session.Active {
		active = 1
	}
	_, err = tx.ExecContext(ctx, sqlInsertSession,
		session.AppID,
		session.StartTime.UnixMilli(),
		session.AllowedSeconds,
		session.TierUsed,
		active,
	)
	if err != nil {
		return fmt.Errorf("save session: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save session: commit: %w", err)
	}
	return nil
}

// DeactivateSession flags the app's active session inactive.
func (r *SessionRepo) DeactivateSession(ctx context.Context, appID string) error {
	if _, err := r.db.ExecContext(ctx, sqlDeactivateSessions, appID); err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}

// GetCooldown returns the stored cooldown for the app, or nil.
func (r *SessionRepo) GetCooldown(ctx context.Context, appID string) (*domain.Cooldown, error) {
	var (
		cd       domain.Cooldown
		endsAtMs int64
	)
	err := r.db.QueryRowContext(ctx, sqlSelectCooldown, appID).Scan(&cd.AppID, &endsAtMs, &cd.Tier, &cd.Lockout)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cooldown: %w", err)
	}
	cd.EndsAt = time.UnixMilli(endsAtMs)
	return &cd, nil
}

// SaveCooldown upserts the app's cooldown record.
func (r *SessionRepo) SaveCooldown(ctx context.Context, cooldown domain.Cooldown) error {
	_, err := r.db.ExecContext(ctx, sqlUpsertCooldown,
		cooldown.AppID,
		cooldown.EndsAt.UnixMilli(),
		cooldown.Tier,
		cooldown.Lockout,
	)
	if err != nil {
		return fmt.Errorf("save cooldown: %w", err)
	}
	return nil
}

// DeleteCooldown removes the app's cooldown record.
func (r *SessionRepo) DeleteCooldown(ctx context.Context, appID string) error {
	if _, err := r.db.ExecContext(ctx, sqlDeleteCooldown, appID); err != nil {
		return fmt.Errorf("delete cooldown: %w", err)
	}
	return nil
}

// GetPreferredTier returns the remembered tier for the app.
func (r *SessionRepo) GetPreferredTier(ctx context.Context, appID string) (domain.Tier, bool, error) {
	var tier domain.Tier
	err := r.db.QueryRowContext(ctx, sqlSelectPreferredTier, appID).Scan(&tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get preferred tier: %w", err)
	}
	return tier, true, nil
}

// SetPreferredTier upserts the remembered tier for the app.
func (r *SessionRepo) SetPreferredTier(ctx context.Context, appID string, tier domain.Tier) error {
	if _, err := r.db.ExecContext(ctx, sqlUpsertPreferredTier, appID, tier); err != nil {
		return fmt.Errorf("set preferred tier: %w", err)
	}
	return nil
}
