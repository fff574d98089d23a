package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/focusnest/focusgate/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	SessionStarted   Type = "gate.session.started"
	SessionEnded     Type = "gate.session.ended"
	CooldownStarted  Type = "gate.cooldown.started"
	LockoutTriggered Type = "gate.lockout.triggered"
	ChallengeResult  Type = "gate.challenge.result"
	SpendRejected    Type = "gate.spend.rejected"
	MinutesEarned    Type = "economy.minutes.earned"
	MinutesSpent     Type = "economy.minutes.spent"
	StageChanged     Type = "economy.stage.changed"
)

// Typed event payloads for type safety

// SessionPayloadV1 is the typed payload for session lifecycle events
type SessionPayloadV1 struct {
	AppID            string      `json:"app_id"`
	Tier             domain.Tier `json:"tier"`
	AllowanceMinutes int         `json:"allowance_minutes"`
	Timestamp        int64       `json:"timestamp"`
}

// CooldownPayloadV1 is the typed payload for cooldown events
type CooldownPayloadV1 struct {
	AppID            string      `json:"app_id"`
	Tier             domain.Tier `json:"tier"`
	DurationSeconds  int         `json:"duration_seconds"`
	Lockout          bool        `json:"lockout"`
	Timestamp        int64       `json:"timestamp"`
}

// ChallengeResultPayloadV1 is the typed payload for graded challenge attempts
type ChallengeResultPayloadV1 struct {
	AppID       string               `json:"app_id"`
	ChallengeID string               `json:"challenge_id"`
	Type        domain.ChallengeType `json:"challenge_type"`
	Difficulty  domain.Tier          `json:"difficulty"`
	Correct     bool                 `json:"correct"`
	TimedOut    bool                 `json:"timed_out"`
	SolveTimeMs int64                `json:"solve_time_ms"`
	FailCount   int                  `json:"fail_count"`
	Timestamp   int64                `json:"timestamp"`
}

// MinutesPayloadV1 is the typed payload for economy credit/debit events
type MinutesPayloadV1 struct {
	Amount    int    `json:"amount"`
	Balance   int    `json:"balance"`
	Source    string `json:"source,omitempty"`
	Capped    bool   `json:"capped,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// StageChangedPayloadV1 is the typed payload for growth-stage transitions
type StageChangedPayloadV1 struct {
	From      domain.GrowthStage `json:"from"`
	To        domain.GrowthStage `json:"to"`
	Lifetime  int                `json:"lifetime_earned"`
	Timestamp int64              `json:"timestamp"`
}

// SpendRejectedPayloadV1 is the typed payload for rejected spend attempts
type SpendRejectedPayloadV1 struct {
	AppID     string `json:"app_id"`
	Cost      int    `json:"cost"`
	Balance   int    `json:"balance"`
	Shortfall int    `json:"shortfall"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewSessionStartedEvent creates a session started event
func NewSessionStartedEvent(appID string, tier domain.Tier, allowanceMinutes int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionStarted,
		Payload: SessionPayloadV1{
			AppID:            appID,
			Tier:             tier,
			AllowanceMinutes: allowanceMinutes,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewSessionEndedEvent creates a session ended event
func NewSessionEndedEvent(appID string, tier domain.Tier) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionEnded,
		Payload: SessionPayloadV1{
			AppID:     appID,
			Tier:      tier,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCooldownStartedEvent creates a cooldown started event
func NewCooldownStartedEvent(appID string, tier domain.Tier, durationSeconds int, lockout bool) Event {
	t := CooldownStarted
	if lockout {
		t = LockoutTriggered
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: CooldownPayloadV1{
			AppID:           appID,
			Tier:            tier,
			DurationSeconds: durationSeconds,
			Lockout:         lockout,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewChallengeResultEvent creates a challenge result event
func NewChallengeResultEvent(appID string, ch *domain.Challenge, correct, timedOut bool, solveTimeMs int64, failCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChallengeResult,
		Payload: ChallengeResultPayloadV1{
			AppID:       appID,
			ChallengeID: ch.ID,
			Type:        ch.Type,
			Difficulty:  ch.Difficulty,
			Correct:     correct,
			TimedOut:    timedOut,
			SolveTimeMs: solveTimeMs,
			FailCount:   failCount,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewMinutesEarnedEvent creates a minutes earned event
func NewMinutesEarnedEvent(amount, balance int, source string, capped bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MinutesEarned,
		Payload: MinutesPayloadV1{
			Amount:    amount,
			Balance:   balance,
			Source:    source,
			Capped:    capped,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMinutesSpentEvent creates a minutes spent event
func NewMinutesSpentEvent(amount, balance int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MinutesSpent,
		Payload: MinutesPayloadV1{
			Amount:    amount,
			Balance:   balance,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewStageChangedEvent creates a growth-stage change event
func NewStageChangedEvent(from, to domain.GrowthStage, lifetime int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StageChanged,
		Payload: StageChangedPayloadV1{
			From:      from,
			To:        to,
			Lifetime:  lifetime,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSpendRejectedEvent creates a spend rejected event
func NewSpendRejectedEvent(appID string, cost, balance int, reason string) Event {
	shortfall := cost - balance
	if shortfall < 0 {
		shortfall = 0
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SpendRejected,
		Payload: SpendRejectedPayloadV1{
			AppID:     appID,
			Cost:      cost,
			Balance:   balance,
			Shortfall: shortfall,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// the gate has no background workers to hand them to.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
