package economy

import "github.com/focusnest/focusgate/internal/domain"

// StageProgress reports where a plant sits between its current stage and
// the next one. NextStage is empty at the top stage.
type StageProgress struct {
	CurrentStage  domain.GrowthStage `json:"current_stage"`
	NextStage     domain.GrowthStage `json:"next_stage,omitempty"`
	Progress      float64            `json:"progress"` // 0-1
	MinutesToNext int                `json:"minutes_to_next"`
}

// StageForTotal derives the growth stage from lifetime earned minutes.
// It depends only on the lifetime total, so spending never lowers it.
func StageForTotal(totalLifetimeEarned int) domain.GrowthStage {
	for _, t := range stageThresholds {
		if totalLifetimeEarned >= t.Min {
			return t.Stage
		}
	}
	return domain.StageSeed
}

// NextStageProgressForTotal computes the progress fraction toward the next
// stage: (total - currentMin) / (nextMin - currentMin), clamped to 1.
func NextStageProgressForTotal(totalLifetimeEarned int) StageProgress {
	current := StageForTotal(totalLifetimeEarned)

	currentIdx := 0
	for i, t := range stageThresholds {
		if t.Stage == current {
			currentIdx = i
			break
		}
	}

	if currentIdx == 0 {
		// Top of the ladder: nothing further to grow into.
		return StageProgress{CurrentStage: current, Progress: 1}
	}

	next := stageThresholds[currentIdx-1]
	cur := stageThresholds[currentIdx]
	progress := float64(totalLifetimeEarned-cur.Min) / float64(next.Min-cur.Min)
	if progress > 1 {
		progress = 1
	}

	remaining := next.Min - totalLifetimeEarned
	if remaining < 0 {
		remaining = 0
	}

	return StageProgress{
		CurrentStage:  current,
		NextStage:     next.Stage,
		Progress:      progress,
		MinutesToNext: remaining,
	}
}

// AgeForTotal converts lifetime minutes into the display age.
func AgeForTotal(totalLifetimeEarned int) domain.PlantAge {
	return domain.PlantAge{
		Years:        totalLifetimeEarned / MinutesPerPlantYear,
		Days:         (totalLifetimeEarned % MinutesPerPlantYear) / MinutesPerPlantDay,
		Minutes:      totalLifetimeEarned % MinutesPerPlantDay,
		TotalMinutes: totalLifetimeEarned,
	}
}
