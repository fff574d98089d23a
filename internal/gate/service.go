package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/focusnest/focusgate/internal/adaptive"
	"github.com/focusnest/focusgate/internal/challenge"
	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/domain"
	"github.com/focusnest/focusgate/internal/economy"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/logger"
	"github.com/focusnest/focusgate/internal/session"
)

// Service orchestrates one unlock cycle per app: tier selection, the
// challenge and spend paths, session start, and lockouts. All state that
// survives a restart lives in the session and economy services; the cycle
// itself (chosen tier, pending challenge, fail count) is deliberately
// ephemeral.
type Service interface {
	// GetState resolves where the app's gate currently stands. A session
	// past its allowance or a lifted cooldown is normalized first.
	GetState(ctx context.Context, appID string) (*State, error)
	// SelectTier opens a fresh unlock cycle on the given tier, optionally
	// remembering it as the app's default.
	SelectTier(ctx context.Context, appID string, tier domain.Tier, remember bool) (*State, error)
	// SwitchPath flips between the challenge and spend paths on tiers that
	// leave the choice open.
	SwitchPath(ctx context.Context, appID string, spendPath bool) (*State, error)
	// SubmitAnswer grades the pending challenge. Answers arriving past the
	// challenge deadline count as failures regardless of correctness.
	SubmitAnswer(ctx context.Context, appID, challengeID string, answerIndex int) (*State, error)
	// Spend buys an allowance with Plant Minutes and starts the session.
	Spend(ctx context.Context, appID string, minutes int) (*State, error)
	// EndSession closes the running session early; the tier cooldown still
	// applies in full.
	EndSession(ctx context.Context, appID string) (*State, error)
}

type service struct {
	sessions   session.Service
	economy    economy.Service
	challenges challenge.Service
	adaptive   adaptive.Service
	bus        event.Bus
	clk        clock.Clock

	mu     sync.Mutex
	cycles map[string]*cycle
}

// cycle is the in-flight unlock attempt for one app.
type cycle struct {
	cfg             domain.TierConfig
	spendPath       bool
	challenge       *domain.Challenge
	issuedAt        time.Time
	failCount       int
	challengePassed bool
}

// NewService creates a new gate service
func NewService(sessions session.Service, eco economy.Service, challenges challenge.Service, adp adaptive.Service, bus event.Bus, clk clock.Clock) Service {
	return &service{
		sessions:   sessions,
		economy:    eco,
		challenges: challenges,
		adaptive:   adp,
		bus:        bus,
		clk:        clk,
		cycles:     make(map[string]*cycle),
	}
}

func (s *service) GetState(ctx context.Context, appID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(ctx, appID, nil)
}

// resolve computes the current state. Callers hold s.mu.
func (s *service) resolve(ctx context.Context, appID string, result *AttemptResult) (*State, error) {
	state := &State{AppID: appID, Result: result}

	eco, err := s.economy.GetState(ctx)
	if err != nil {
		return nil, err
	}
	state.Balance = eco.Balance

	sess, err := s.sessions.GetActiveSession(ctx, appID)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		remaining := s.sessions.RemainingSeconds(sess)
		state.Phase = PhaseSessionActive
		state.Session = &SessionView{
			Tier:             sess.TierUsed,
			RemainingSeconds: remaining,
			Countdown:        session.FormatCountdown(remaining),
		}
		return state, nil
	}

	cd, err := s.sessions.GetCooldown(ctx, appID)
	if err != nil {
		return nil, err
	}
	if cd != nil {
		// A cooldown voids whatever cycle was in flight; the next cycle
		// starts clean with counters at zero.
		delete(s.cycles, appID)
		remaining := cd.RemainingSeconds(s.clk.Now())
		state.Phase = PhaseCooldown
		state.Cooldown = &CooldownView{
			Tier:             cd.Tier,
			RemainingSeconds: remaining,
			Countdown:        session.FormatCountdown(remaining),
			Lockout:          cd.Lockout,
		}
		return state, nil
	}

	if c, ok := s.cycles[appID]; ok {
		s.fillCyclePhase(state, c)
		return state, nil
	}

	// A remembered tier skips the selection screen.
	if tier, ok, err := s.sessions.GetPreferredTier(ctx, appID); err != nil {
		return nil, err
	} else if ok {
		c, err := s.openCycle(appID, tier)
		if err != nil {
			return nil, err
		}
		s.fillCyclePhase(state, c)
		return state, nil
	}

	state.Phase = PhaseSelectTier
	state.Tiers = s.sessions.Tiers().All()
	return state, nil
}

func (s *service) fillCyclePhase(state *State, c *cycle) {
	cfg := c.cfg
	state.Phase = requiredPhase(cfg, c.spendPath, c.challengePassed)
	state.Tier = &cfg
	state.FailCount = c.failCount
	state.CanSwitchPath = pathSwitchable(cfg)
	if state.Phase == PhaseChallenge || state.Phase == PhaseChallengeAndSpend {
		state.Challenge = c.challenge
	}
	if state.Phase == PhaseSpend || state.Phase == PhaseChallengeAndSpend {
		state.SpendOptions = s.spendQuotes(cfg, state.Balance)
	}
}

func (s *service) spendQuotes(cfg domain.TierConfig, balance int) []SpendQuote {
	quotes := make([]SpendQuote, 0, len(cfg.AllowanceOptions))
	for _, minutes := range cfg.AllowanceOptions {
		cost := s.economy.SpendCost(minutes)
		quotes = append(quotes, SpendQuote{
			Minutes:    minutes,
			Cost:       cost,
			Affordable: balance >= cost,
		})
	}
	return quotes
}

func (s *service) SelectTier(ctx context.Context, appID string, tier domain.Tier, remember bool) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(ctx, appID); err != nil {
		return nil, err
	}

	if _, err := s.openCycle(appID, tier); err != nil {
		return nil, err
	}
	if remember {
		if err := s.sessions.SetPreferredTier(ctx, appID, tier); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info("Tier selected", "app_id", appID, "tier", tier, "remember", remember)
	return s.resolve(ctx, appID, nil)
}

// requireIdle rejects cycle mutations while a session runs or a cooldown
// holds. Callers hold s.mu.
func (s *service) requireIdle(ctx context.Context, appID string) error {
	sess, err := s.sessions.GetActiveSession(ctx, appID)
	if err != nil {
		return err
	}
	if sess != nil {
		return fmt.Errorf("%w: session already active for %s", domain.ErrInvalidTransition, appID)
	}
	cd, err := s.sessions.GetCooldown(ctx, appID)
	if err != nil {
		return err
	}
	if cd != nil {
		if cd.Lockout {
			return fmt.Errorf("%w: %ds remaining", domain.ErrLockedOut, cd.RemainingSeconds(s.clk.Now()))
		}
		return fmt.Errorf("%w: %ds remaining", domain.ErrOnCooldown, cd.RemainingSeconds(s.clk.Now()))
	}
	return nil
}

// openCycle creates the cycle for a tier, issuing a challenge when the
// entry phase calls for one. Callers hold s.mu.
func (s *service) openCycle(appID string, tier domain.Tier) (*cycle, error) {
	cfg, err := s.sessions.Tiers().Get(tier)
	if err != nil {
		return nil, err
	}
	c := &cycle{cfg: cfg}
	if err := s.issueChallenge(c); err != nil {
		return nil, err
	}
	s.cycles[appID] = c
	return c, nil
}

// issueChallenge generates a fresh challenge if the cycle's phase shows
// one, and drops any stale challenge otherwise.
func (s *service) issueChallenge(c *cycle) error {
	phase := requiredPhase(c.cfg, c.spendPath, c.challengePassed)
	if phase != PhaseChallenge && phase != PhaseChallengeAndSpend {
		c.challenge = nil
		return nil
	}
	ch, err := s.challenges.Generate(c.cfg.Tier)
	if err != nil {
		return err
	}
	c.challenge = ch
	c.issuedAt = s.clk.Now()
	return nil
}

func (s *service) SwitchPath(ctx context.Context, appID string, spendPath bool) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(ctx, appID); err != nil {
		return nil, err
	}
	c, ok := s.cycles[appID]
	if !ok {
		return nil, fmt.Errorf("%w: no cycle open for %s", domain.ErrInvalidTransition, appID)
	}
	if !pathSwitchable(c.cfg) {
		return nil, fmt.Errorf("%w: tier %s does not offer a choice", domain.ErrInvalidTransition, c.cfg.Tier)
	}

	c.spendPath = spendPath
	if err := s.issueChallenge(c); err != nil {
		return nil, err
	}
	return s.resolve(ctx, appID, nil)
}

func (s *service) SubmitAnswer(ctx context.Context, appID, challengeID string, answerIndex int) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	if err := s.requireIdle(ctx, appID); err != nil {
		return nil, err
	}
	c, ok := s.cycles[appID]
	if !ok || c.challenge == nil {
		return nil, domain.ErrNoChallenge
	}
	if c.challenge.ID != challengeID {
		return nil, fmt.Errorf("%w: have %s, got %s", domain.ErrChallengeMismatch, c.challenge.ID, challengeID)
	}

	ch := c.challenge
	solveMs := s.clk.Now().Sub(c.issuedAt).Milliseconds()
	timedOut := solveMs > int64(ch.TimeLimitSec)*1000
	correct := !timedOut && s.challenges.Check(ch, answerIndex)

	if err := s.adaptive.Record(ctx, correct, solveMs); err != nil {
		log.Warn("Failed to record challenge outcome", "error", err)
	}

	result := &AttemptResult{Correct: correct, TimedOut: timedOut}

	if !correct {
		c.failCount++
		s.publish(ctx, event.NewChallengeResultEvent(appID, ch, false, timedOut, solveMs, c.failCount))
		log.Info("Challenge failed", "app_id", appID, "tier", ch.Difficulty, "timed_out", timedOut, "fail_count", c.failCount)

		if c.cfg.MaxFailsBeforeLockout > 0 && c.failCount >= c.cfg.MaxFailsBeforeLockout {
			delete(s.cycles, appID)
			if _, err := s.sessions.StartLockoutCooldown(ctx, appID, c.cfg.Tier); err != nil {
				return nil, err
			}
			result.LockedOut = true
			return s.resolve(ctx, appID, result)
		}

		// Fresh question for the retry.
		if err := s.issueChallenge(c); err != nil {
			return nil, err
		}
		return s.resolve(ctx, appID, result)
	}

	s.publish(ctx, event.NewChallengeResultEvent(appID, ch, true, false, solveMs, c.failCount))

	earn, err := s.economy.Earn(ctx, ch.PointsReward, "challenge_reward")
	if err != nil {
		return nil, err
	}
	if earn.Success {
		result.PointsEarned = earn.Earned
	}

	if c.cfg.RequireChallenge && c.cfg.RequireSpend {
		// Hard path: the spend step is now unlocked.
		c.challengePassed = true
		c.challenge = nil
		log.Info("Challenge passed, spend step unlocked", "app_id", appID)
		return s.resolve(ctx, appID, result)
	}

	delete(s.cycles, appID)
	if _, err := s.sessions.StartSession(ctx, appID, c.cfg.FirstAllowance(), c.cfg.Tier); err != nil {
		return nil, err
	}
	return s.resolve(ctx, appID, result)
}

func (s *service) Spend(ctx context.Context, appID string, minutes int) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	if err := s.requireIdle(ctx, appID); err != nil {
		return nil, err
	}
	c, ok := s.cycles[appID]
	if !ok {
		return nil, fmt.Errorf("%w: no cycle open for %s", domain.ErrInvalidTransition, appID)
	}
	cfg := c.cfg

	if cfg.RequireChallenge && !cfg.RequireSpend {
		return nil, fmt.Errorf("%w: tier %s has no spend path", domain.ErrInvalidTransition, cfg.Tier)
	}
	if cfg.RequireChallenge && cfg.RequireSpend && !c.challengePassed {
		return nil, fmt.Errorf("%w: tier %s", domain.ErrChallengeRequired, cfg.Tier)
	}
	if !cfg.HasAllowance(minutes) {
		return nil, fmt.Errorf("%w: %d minutes on tier %s", domain.ErrInvalidAllowance, minutes, cfg.Tier)
	}

	cost := s.economy.SpendCost(minutes)
	if _, err := s.economy.Spend(ctx, cost, "gate_unlock"); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			eco, stateErr := s.economy.GetState(ctx)
			if stateErr == nil {
				s.publish(ctx, event.NewSpendRejectedEvent(appID, cost, eco.Balance, domain.ErrMsgInsufficientFunds))
			}
		}
		return nil, err
	}

	delete(s.cycles, appID)
	if _, err := s.sessions.StartSession(ctx, appID, minutes, cfg.Tier); err != nil {
		return nil, err
	}
	log.Info("Allowance purchased", "app_id", appID, "minutes", minutes, "cost", cost)
	return s.resolve(ctx, appID, nil)
}

func (s *service) EndSession(ctx context.Context, appID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.GetActiveSession(ctx, appID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, appID)
	}
	if err := s.sessions.EndSession(ctx, appID); err != nil {
		return nil, err
	}
	return s.resolve(ctx, appID, nil)
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", ev.Type, "error", err)
	}
}
