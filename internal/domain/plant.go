package domain

// PlantState is the Plant Minutes ledger. Balance is the spendable amount;
// TotalLifetimeEarned only ever grows and drives the growth stage.
type PlantState struct {
	Balance             int    `json:"balance"`
	EarnedToday         int    `json:"earned_today"`
	TotalLifetimeEarned int    `json:"total_lifetime_earned"`
	LastResetDate       string `json:"last_reset_date"` // YYYY-MM-DD
}

// GrowthStage is the cosmetic progression level derived purely from lifetime
// earned minutes. Spending never moves it.
type GrowthStage string

const (
	StageSeed      GrowthStage = "seed"
	StageSprout    GrowthStage = "sprout"
	StageSapling   GrowthStage = "sapling"
	StageYoungTree GrowthStage = "young_tree"
	StageMature    GrowthStage = "mature"
	StageAncient   GrowthStage = "ancient"
)

// StageLabels maps stages to their display names.
var StageLabels = map[GrowthStage]string{
	StageSeed:      "Seed",
	StageSprout:    "Sprout",
	StageSapling:   "Sapling",
	StageYoungTree: "Young Tree",
	StageMature:    "Mature Tree",
	StageAncient:   "Ancient Tree",
}

// PlantAge is the display decomposition of lifetime minutes:
// 60 minutes = 1 plant day, 24 plant days = 1 plant year.
type PlantAge struct {
	Years        int `json:"years"`
	Days         int `json:"days"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

// ActivityReward describes one external earn source and its per-day limit.
type ActivityReward struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Reward   int    `json:"reward"`
	DailyCap int    `json:"daily_cap"` // times per day, not minutes
}

// SpendOption pairs an allowance length with its Plant Minutes cost.
type SpendOption struct {
	AllowanceMinutes int `json:"allowance_minutes"`
	Cost             int `json:"cost"`
}
