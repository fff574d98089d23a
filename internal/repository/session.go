package repository

import (
	"context"

	"github.com/focusnest/focusgate/internal/domain"
)

// Sessions defines the interface for session, cooldown and tier-preference
// persistence. Expiry is NOT applied here; the session service normalizes
// state on read so that stores stay dumb and interchangeable.
type Sessions interface {
	// GetActiveSession returns the active session for the app, or nil.
	GetActiveSession(ctx context.Context, appID string) (*domain.Session, error)
	// SaveSession persists a session, deactivating any other active session
	// for the same app in the same write.
	SaveSession(ctx context.Context, session domain.Session) error
	// DeactivateSession flags the app's active session inactive, if any.
	DeactivateSession(ctx context.Context, appID string) error

	// GetCooldown returns the cooldown record for the app, or nil. Expired
	// records are returned as stored; callers decide when to delete.
	GetCooldown(ctx context.Context, appID string) (*domain.Cooldown, error)
	// SaveCooldown upserts the app's cooldown (at most one per app).
	SaveCooldown(ctx context.Context, cooldown domain.Cooldown) error
	// DeleteCooldown removes the app's cooldown record, if any.
	DeleteCooldown(ctx context.Context, appID string) error

	GetPreferredTier(ctx context.Context, appID string) (domain.Tier, bool, error)
	SetPreferredTier(ctx context.Context, appID string, tier domain.Tier) error
}
