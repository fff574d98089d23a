package session

import (
	"context"
	"fmt"
	"time"

	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/logger"
	"github.com/focusnest/focusgate/internal/repository"
)

// Service manages timed access sessions and the cooldowns between them.
// Expiry is lazy: sessions and cooldowns are normalized whenever they are
// observed, never by a background timer.
type Service interface {
	Tiers() *TierSet
	StartSession(ctx context.Context, appID string, allowedMinutes int, tier domain.Tier) (*domain.Session, error)
	// GetActiveSession returns the live session for the app, ending it
	// first (cooldown included) when its allowance has run out.
	GetActiveSession(ctx context.Context, appID string) (*domain.Session, error)
	RemainingSeconds(session *domain.Session) int
	// EndSession deactivates the app's session and starts the tier cooldown
	// when the tier defines one.
	EndSession(ctx context.Context, appID string) error
	// GetCooldown returns the app's cooldown, deleting it first if it has
	// already lifted. An expired cooldown is never observed.
	GetCooldown(ctx context.Context, appID string) (*domain.Cooldown, error)
	// StartLockoutCooldown applies the fixed failure lockout, replacing any
	// cooldown already in place.
	StartLockoutCooldown(ctx context.Context, appID string, tier domain.Tier) (*domain.Cooldown, error)
	GetPreferredTier(ctx context.Context, appID string) (domain.Tier, bool, error)
	SetPreferredTier(ctx context.Context, appID string, tier domain.Tier) error
}

type service struct {
	repo  repository.Sessions
	tiers *TierSet
	bus   event.Bus
	clk   clock.Clock
	rnd   func() float64
}

// NewService creates a new session service
func NewService(repo repository.Sessions, tiers *TierSet, bus event.Bus, clk clock.Clock, rnd func() float64) Service {
	return &service{repo: repo, tiers: tiers, bus: bus, clk: clk, rnd: rnd}
}

func (s *service) Tiers() *TierSet {
	return s.tiers
}

func (s *service) StartSession(ctx context.Context, appID string, allowedMinutes int, tier domain.Tier) (*domain.Session, error) {
	if _, err := s.tiers.Get(tier); err != nil {
		return nil, err
	}
	if allowedMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", domain.ErrInvalidAllowance, allowedMinutes)
	}

	session := domain.Session{
		AppID:          appID,
		StartTime:      s.clk.Now(),
		AllowedSeconds: allowedMinutes * SecondsPerMinute,
		TierUsed:       tier,
		Active:         true,
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.FromContext(ctx).Info("Session started", "app_id", appID, "tier", tier, "allowed_minutes", allowedMinutes)
	s.publish(ctx, event.NewSessionStartedEvent(appID, tier, allowedMinutes))
	return &session, nil
}

func (s *service) GetActiveSession(ctx context.Context, appID string) (*domain.Session, error) {
	session, err := s.repo.GetActiveSession(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired(s.clk.Now()) {
		if err := s.EndSession(ctx, appID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

func (s *service) RemainingSeconds(session *domain.Session) int {
	if session == nil {
		return 0
	}
	remaining := session.AllowedSeconds - session.ElapsedSeconds(s.clk.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *service) EndSession(ctx context.Context, appID string) error {
	session, err := s.repo.GetActiveSession(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get active session: %w", err)
	}
	if session == nil {
		return nil
	}

	if err := s.repo.DeactivateSession(ctx, appID); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	logger.FromContext(ctx).Info("Session ended", "app_id", appID, "tier", session.TierUsed)
	s.publish(ctx, event.NewSessionEndedEvent(appID, session.TierUsed))

	cfg, err := s.tiers.Get(session.TierUsed)
	if err != nil {
		return err
	}
	if cfg.CooldownMinutes.Max > 0 {
		if _, err := s.startCooldown(ctx, appID, s.drawCooldown(cfg.CooldownMinutes), session.TierUsed, false); err != nil {
			return err
		}
	}
	return nil
}

// drawCooldown picks a duration uniformly from the tier's range.
func (s *service) drawCooldown(r domain.CooldownRange) time.Duration {
	minutes := float64(r.Min) + s.rnd()*float64(r.Max-r.Min)
	return time.Duration(minutes * float64(time.Minute))
}

func (s *service) startCooldown(ctx context.Context, appID string, d time.Duration, tier domain.Tier, lockout bool) (*domain.Cooldown, error) {
	cooldown := domain.Cooldown{
		AppID:   appID,
		EndsAt:  s.clk.Now().Add(d),
		Tier:    tier,
		Lockout: lockout,
	}
	if err := s.repo.SaveCooldown(ctx, cooldown); err != nil {
		return nil, fmt.Errorf("failed to save cooldown: %w", err)
	}

	seconds := int(d / time.Second)
	logger.FromContext(ctx).Info("Cooldown started", "app_id", appID, "tier", tier, "duration_seconds", seconds, "lockout", lockout)
	s.publish(ctx, event.NewCooldownStartedEvent(appID, tier, seconds, lockout))
	return &cooldown, nil
}

func (s *service) GetCooldown(ctx context.Context, appID string) (*domain.Cooldown, error) {
	cooldown, err := s.repo.GetCooldown(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cooldown: %w", err)
	}
	if cooldown == nil {
		return nil, nil
	}
	if !s.clk.Now().Before(cooldown.EndsAt) {
		if err := s.repo.DeleteCooldown(ctx, appID); err != nil {
			return nil, fmt.Errorf("failed to delete expired cooldown: %w", err)
		}
		return nil, nil
	}
	return cooldown, nil
}

func (s *service) StartLockoutCooldown(ctx context.Context, appID string, tier domain.Tier) (*domain.Cooldown, error) {
	return s.startCooldown(ctx, appID, LockoutCooldownMinutes*time.Minute, tier, true)
}

func (s *service) GetPreferredTier(ctx context.Context, appID string) (domain.Tier, bool, error) {
	tier, ok, err := s.repo.GetPreferredTier(ctx, appID)
	if err != nil {
		return "", false, fmt.Errorf("failed to get preferred tier: %w", err)
	}
	if ok && !tier.IsValid() {
		// Stored value from an older build; ignore it.
		return "", false, nil
	}
	return tier, ok, nil
}

func (s *service) SetPreferredTier(ctx context.Context, appID string, tier domain.Tier) error {
	if !tier.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	if err := s.repo.SetPreferredTier(ctx, appID, tier); err != nil {
		return fmt.Errorf("failed to set preferred tier: %w", err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", ev.Type, "error", err)
	}
}

// FormatCountdown renders whole seconds as m:ss for overlay display.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
