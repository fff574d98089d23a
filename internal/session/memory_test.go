package session

import (
	"context"

	"github.com/focusnest/focusgate/internal/domain"
)

// memorySessions is an in-memory Sessions repository for tests.
type memorySessions struct {
	sessions  []domain.Session
	cooldowns map[string]domain.Cooldown
	preferred map[string]domain.Tier
	deletes   int // DeleteCooldown call count
}

func newMemorySessions() *memorySessions {
	return &memorySessions{
		cooldowns: make(map[string]domain.Cooldown),
		preferred: make(map[string]domain.Tier),
	}
}

func (m *memorySessions) GetActiveSession(_ context.Context, appID string) (*domain.Session, error) {
	for i := range m.sessions {
		if m.sessions[i].AppID == appID && m.sessions[i].Active {
			s := m.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memorySessions) SaveSession(_ context.Context, session domain.Session) error {
	for i := range m.sessions {
		if m.sessions[i].AppID == session.AppID {
			m.sessions[i].Active = false
		}
	}
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *memorySessions) DeactivateSession(_ context.Context, appID string) error {
	for i := range m.sessions {
		if m.sessions[i].AppID == appID {
			m.sessions[i].Active = false
		}
	}
	return nil
}

func (m *memorySessions) GetCooldown(_ context.Context, appID string) (*domain.Cooldown, error) {
	cd, ok := m.cooldowns[appID]
	if !ok {
		return nil, nil
	}
	return &cd, nil
}

func (m *memorySessions) SaveCooldown(_ context.Context, cooldown domain.Cooldown) error {
	m.cooldowns[cooldown.AppID] = cooldown
	return nil
}

func (m *memorySessions) DeleteCooldown(_ context.Context, appID string) error {
	delete(m.cooldowns, appID)
	m.deletes++
	return nil
}

func (m *memorySessions) GetPreferredTier(_ context.Context, appID string) (domain.Tier, bool, error) {
	tier, ok := m.preferred[appID]
	return tier, ok, nil
}

func (m *memorySessions) SetPreferredTier(_ context.Context, appID string, tier domain.Tier) error {
	m.preferred[appID] = tier
	return nil
}
