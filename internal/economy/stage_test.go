package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/focusnest/focusgate/internal/domain"
)

func TestStageForTotal(t *testing.T) {
	tests := []struct {
		total int
		want  domain.GrowthStage
	}{
		{0, domain.StageSeed},
		{199, domain.StageSeed},
		{200, domain.StageSprout},
		{599, domain.StageSprout},
		{600, domain.StageSapling},
		{1499, domain.StageSapling},
		{1500, domain.StageYoungTree},
		{2999, domain.StageYoungTree},
		{3000, domain.StageMature},
		{5999, domain.StageMature},
		{6000, domain.StageAncient},
		{100000, domain.StageAncient},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StageForTotal(tt.total), "total=%d", tt.total)
	}
}

func TestNextStageProgressForTotal(t *testing.T) {
	// Halfway from sprout (200) to sapling (600).
	p := NextStageProgressForTotal(400)
	assert.Equal(t, domain.StageSprout, p.CurrentStage)
	assert.Equal(t, domain.StageSapling, p.NextStage)
	assert.InDelta(t, 0.5, p.Progress, 1e-9)
	assert.Equal(t, 200, p.MinutesToNext)

	// Fresh seed.
	p = NextStageProgressForTotal(0)
	assert.Equal(t, domain.StageSeed, p.CurrentStage)
	assert.Equal(t, domain.StageSprout, p.NextStage)
	assert.Zero(t, p.Progress)
	assert.Equal(t, 200, p.MinutesToNext)

	// Top stage reports full progress and no next stage.
	p = NextStageProgressForTotal(9000)
	assert.Equal(t, domain.StageAncient, p.CurrentStage)
	assert.Empty(t, p.NextStage)
	assert.Equal(t, 1.0, p.Progress)
	assert.Zero(t, p.MinutesToNext)
}

func TestAgeForTotal(t *testing.T) {
	// 60 minutes is one plant day, 24 plant days one plant year.
	age := AgeForTotal(0)
	assert.Equal(t, domain.PlantAge{TotalMinutes: 0}, age)

	age = AgeForTotal(59)
	assert.Equal(t, 0, age.Years)
	assert.Equal(t, 0, age.Days)
	assert.Equal(t, 59, age.Minutes)

	age = AgeForTotal(125)
	assert.Equal(t, 0, age.Years)
	assert.Equal(t, 2, age.Days)
	assert.Equal(t, 5, age.Minutes)

	age = AgeForTotal(1505)
	assert.Equal(t, 1, age.Years)
	assert.Equal(t, 1, age.Days)
	assert.Equal(t, 5, age.Minutes)
	assert.Equal(t, 1505, age.TotalMinutes)
}
