package gate

import (
	"context"

	"github.com/focusnest/focusgate/internal/domain"
)

// In-memory repositories backing the real services under test.

type memEconomy struct {
	state    domain.PlantState
	activity map[string]int
}

func newMemEconomy() *memEconomy {
	return &memEconomy{activity: make(map[string]int)}
}

func (m *memEconomy) GetPlantState(context.Context) (domain.PlantState, error) {
	return m.state, nil
}

func (m *memEconomy) SavePlantState(_ context.Context, state domain.PlantState) error {
	m.state = state
	return nil
}

func (m *memEconomy) GetActivityCount(_ context.Context, activityID, date string) (int, error) {
	return m.activity[activityID+":"+date], nil
}

func (m *memEconomy) IncrementActivityCount(_ context.Context, activityID, date string) error {
	m.activity[activityID+":"+date]++
	return nil
}

type memSessions struct {
	sessions  []domain.Session
	cooldowns map[string]domain.Cooldown
	preferred map[string]domain.Tier
}

func newMemSessions() *memSessions {
	return &memSessions{
		cooldowns: make(map[string]domain.Cooldown),
		preferred: make(map[string]domain.Tier),
	}
}

func (m *memSessions) GetActiveSession(_ context.Context, appID string) (*domain.Session, error) {
	for i := range m.sessions {
		if m.sessions[i].AppID == appID && m.sessions[i].Active {
			s := m.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memSessions) SaveSession(_ context.Context, session domain.Session) error {
	for i := range m.sessions {
		if m.sessions[i].AppID == session.AppID {
			m.sessions[i].Active = false
		}
	}
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *memSessions) DeactivateSession(_ context.Context, appID string) error {
	for i := range m.sessions {
		if m.sessions[i].AppID == appID {
			m.sessions[i].Active = false
		}
	}
	return nil
}

func (m *memSessions) GetCooldown(_ context.Context, appID string) (*domain.Cooldown, error) {
	cd, ok := m.cooldowns[appID]
	if !ok {
		return nil, nil
	}
	return &cd, nil
}

func (m *memSessions) SaveCooldown(_ context.Context, cooldown domain.Cooldown) error {
	m.cooldowns[cooldown.AppID] = cooldown
	return nil
}

func (m *memSessions) DeleteCooldown(_ context.Context, appID string) error {
	delete(m.cooldowns, appID)
	return nil
}

func (m *memSessions) GetPreferredTier(_ context.Context, appID string) (domain.Tier, bool, error) {
	tier, ok := m.preferred[appID]
	return tier, ok, nil
}

func (m *memSessions) SetPreferredTier(_ context.Context, appID string, tier domain.Tier) error {
	m.preferred[appID] = tier
	return nil
}

type memAdaptive struct {
	state domain.AdaptiveState
}

func (m *memAdaptive) GetAdaptiveState(context.Context) (domain.AdaptiveState, error) {
	return m.state, nil
}

func (m *memAdaptive) AppendResult(_ context.Context, correct bool, solveTimeMs int64) error {
	m.state.Results = append(m.state.Results, correct)
	m.state.SolveTimes = append(m.state.SolveTimes, solveTimeMs)
	if n := len(m.state.Results); n > domain.AdaptiveWindowSize {
		m.state.Results = m.state.Results[n-domain.AdaptiveWindowSize:]
		m.state.SolveTimes = m.state.SolveTimes[n-domain.AdaptiveWindowSize:]
	}
	return nil
}
