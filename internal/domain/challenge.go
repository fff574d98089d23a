package domain

// ChallengeType categorizes what a challenge exercises.
type ChallengeType string

const (
	ChallengeArithmetic ChallengeType = "arithmetic"
	ChallengePattern    ChallengeType = "pattern"
	ChallengeMemory     ChallengeType = "memory"
	ChallengeLogic      ChallengeType = "logic"
	// ChallengeIntent marks reflection prompts. They are friction, not a
	// test: every selected option counts as correct on the easy tier.
	ChallengeIntent ChallengeType = "intent"
)

// OptionCount is the fixed number of answer options every challenge carries.
const OptionCount = 4

// Challenge is a self-contained question generated for a single unlock
// attempt. It is never persisted beyond the attempt it was issued for.
type Challenge struct {
	ID            string        `json:"id"`
	Type          ChallengeType `json:"type"`
	Difficulty    Tier          `json:"difficulty"`
	Prompt        string        `json:"prompt"`
	Options       []string      `json:"options"`
	CorrectAnswer int           `json:"-"` // index into Options, never sent to clients
	TimeLimitSec  int           `json:"time_limit_sec"`
	PointsReward  int           `json:"points_reward"`
}

// AdaptiveState is the rolling per-device performance window the difficulty
// suggester works from. Both slices hold the most recent entries, oldest
// first, trimmed to AdaptiveWindowSize.
type AdaptiveState struct {
	Results    []bool  `json:"results"`
	SolveTimes []int64 `json:"solve_times"` // milliseconds
}

// AdaptiveWindowSize bounds both AdaptiveState slices.
const AdaptiveWindowSize = 10
