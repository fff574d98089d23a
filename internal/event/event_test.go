package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/domain"
)

func TestMemoryBusPublishesToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(SessionStarted, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	ev := NewSessionStartedEvent("com.example.doom", domain.TierEasy, 2)
	err := bus.Publish(context.Background(), ev)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, SessionStarted, got[0].Type)
	payload, ok := got[0].Payload.(SessionPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "com.example.doom", payload.AppID)
	assert.Equal(t, 2, payload.AllowanceMinutes)
}

func TestMemoryBusNoSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewMinutesEarnedEvent(5, 10, "challenge", false))
	assert.NoError(t, err)
}

func TestMemoryBusCollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(LockoutTriggered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(LockoutTriggered, func(context.Context, Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), NewCooldownStartedEvent("app", domain.TierHard, 180, true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
}

func TestNewCooldownStartedEventLockoutType(t *testing.T) {
	ev := NewCooldownStartedEvent("app", domain.TierHard, 180, true)
	assert.Equal(t, LockoutTriggered, ev.Type)

	ev = NewCooldownStartedEvent("app", domain.TierMedium, 120, false)
	assert.Equal(t, CooldownStarted, ev.Type)
}

func TestNewSpendRejectedEventShortfall(t *testing.T) {
	ev := NewSpendRejectedEvent("app", 15, 10, domain.ErrMsgInsufficientFunds)
	payload, ok := ev.Payload.(SpendRejectedPayloadV1)
	if !ok {
		t.Fatalf("unexpected payload type %T", ev.Payload)
	}
	assert.Equal(t, 5, payload.Shortfall)
}
