package economy

import (
	"context"
	"sync"

	"github.com/focusnest/focusgate/internal/domain"
)

// memoryRepo is an in-memory Economy repository for tests.
type memoryRepo struct {
	mu       sync.Mutex
	state    domain.PlantState
	saved    int // SavePlantState call count
	activity map[string]int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{activity: make(map[string]int)}
}

func (m *memoryRepo) GetPlantState(context.Context) (domain.PlantState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *memoryRepo) SavePlantState(_ context.Context, state domain.PlantState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.saved++
	return nil
}

func (m *memoryRepo) GetActivityCount(_ context.Context, activityID, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activity[activityID+":"+date], nil
}

func (m *memoryRepo) IncrementActivityCount(_ context.Context, activityID, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activity[activityID+":"+date]++
	return nil
}
