package metrics

import (
	"context"

	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.SessionEnded,
		event.CooldownStarted,
		event.LockoutTriggered,
		event.ChallengeResult,
		event.SpendRejected,
		event.MinutesEarned,
		event.MinutesSpent,
		event.StageChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.SessionPayloadV1:
		switch evt.Type {
		case event.SessionStarted:
			SessionsStarted.WithLabelValues(string(payload.Tier)).Inc()
		case event.SessionEnded:
			SessionsEnded.WithLabelValues(string(payload.Tier)).Inc()
		}

	case event.CooldownPayloadV1:
		CooldownsStarted.WithLabelValues(string(payload.Tier)).Inc()
		if payload.Lockout {
			LockoutsTriggered.WithLabelValues(string(payload.Tier)).Inc()
		}

	case event.ChallengeResultPayloadV1:
		outcome := OutcomeWrong
		switch {
		case payload.Correct:
			outcome = OutcomeCorrect
		case payload.TimedOut:
			outcome = OutcomeTimedOut
		}
		ChallengeAttempts.WithLabelValues(string(payload.Difficulty), outcome).Inc()
		ChallengeSolveTime.WithLabelValues(string(payload.Difficulty)).Observe(float64(payload.SolveTimeMs) / 1000)

	case event.SpendRejectedPayloadV1:
		SpendsRejected.Inc()

	case event.MinutesPayloadV1:
		switch evt.Type {
		case event.MinutesEarned:
			MinutesEarned.WithLabelValues(payload.Source).Add(float64(payload.Amount))
		case event.MinutesSpent:
			MinutesSpent.WithLabelValues(payload.Source).Add(float64(payload.Amount))
		}

	case event.StageChangedPayloadV1:
		StageChanges.WithLabelValues(string(payload.To)).Inc()

	default:
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
	}

	return nil
}
