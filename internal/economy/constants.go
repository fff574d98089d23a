package economy

import "github.com/focusnest/focusgate/internal/domain"

// DailyEarnCap is the maximum Plant Minutes creditable per calendar day.
const DailyEarnCap = 170

// DateLayout is the calendar-date format stored in the ledger.
const DateLayout = "2006-01-02"

// Plant age display conversion: 60 minutes = 1 plant day, 24 plant days =
// 1 plant year, so 1 plant year = 1440 lifetime minutes.
const (
	MinutesPerPlantDay  = 60
	PlantDaysPerYear    = 24
	MinutesPerPlantYear = MinutesPerPlantDay * PlantDaysPerYear
)

// stageThresholds maps each growth stage to its minimum lifetime earned,
// descending. The stage is the first threshold not exceeding the total.
var stageThresholds = []struct {
	Stage domain.GrowthStage
	Min   int
}{
	{domain.StageAncient, 6000},
	{domain.StageMature, 3000},
	{domain.StageYoungTree, 1500},
	{domain.StageSapling, 600},
	{domain.StageSprout, 200},
	{domain.StageSeed, 0},
}

// spendCosts is the front-loaded cost curve for allowance minutes. Values
// deliberately grow faster than linear to discourage long sessions.
var spendCosts = []domain.SpendOption{
	{AllowanceMinutes: 5, Cost: 8},
	{AllowanceMinutes: 10, Cost: 15},
	{AllowanceMinutes: 20, Cost: 28},
}

// FallbackCostMultiplier prices allowance lengths missing from spendCosts:
// cost = ceil(minutes * multiplier).
const FallbackCostMultiplier = 1.5

// activityRewards is the catalog of external earn sources and their
// per-day usage limits. IDs are stable; clients store them.
var activityRewards = []domain.ActivityReward{
	{ID: "reflection", Name: "Reflection", Reward: 15, DailyCap: 1},
	{ID: "brain_teaser", Name: "Brain Teaser (correct)", Reward: 8, DailyCap: 3},
	{ID: "video_analysis", Name: "Video Fact-Check", Reward: 10, DailyCap: 5},
	{ID: "goal_completed", Name: "Goal Completed", Reward: 20, DailyCap: 3},
}
