package adaptive

// Suggestion tuning. The window itself is bounded by
// domain.AdaptiveWindowSize.
const (
	// MinSamples is the minimum number of recorded outcomes before the
	// suggester will move off the current tier.
	MinSamples = 5
	// PromoteThreshold promotes one tier when the success rate exceeds it.
	PromoteThreshold = 0.8
	// DemoteThreshold demotes one tier when the success rate falls below it.
	DemoteThreshold = 0.3
	// EmptyWindowRate is the neutral success rate reported with no history.
	EmptyWindowRate = 0.5
)
