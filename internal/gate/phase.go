package gate

import "github.com/focusnest/focusgate/internal/domain"

// Phase is where one unlock cycle for an app currently stands.
type Phase string

const (
	// PhaseSelectTier awaits a friction-tier choice.
	PhaseSelectTier Phase = "select_tier"
	// PhaseChallenge shows a challenge whose success unlocks directly.
	PhaseChallenge Phase = "challenge"
	// PhaseSpend awaits a Plant Minutes purchase of an allowance.
	PhaseSpend Phase = "spend"
	// PhaseChallengeAndSpend shows a challenge that must pass before the
	// spend step becomes reachable.
	PhaseChallengeAndSpend Phase = "challenge_and_spend"
	// PhaseSessionActive means a timed allowance window is running.
	PhaseSessionActive Phase = "session_active"
	// PhaseCooldown means the app is resting; no unlock path is open.
	PhaseCooldown Phase = "cooldown"
)

// requiredPhase derives the unlock phase a tier puts a fresh cycle in.
// spendPath only matters for tiers that leave the choice to the user.
func requiredPhase(cfg domain.TierConfig, spendPath, challengePassed bool) Phase {
	switch {
	case cfg.RequireChallenge && cfg.RequireSpend:
		if challengePassed {
			return PhaseSpend
		}
		return PhaseChallengeAndSpend
	case cfg.RequireChallenge:
		return PhaseChallenge
	case cfg.RequireSpend:
		return PhaseSpend
	case spendPath:
		return PhaseSpend
	default:
		return PhaseChallenge
	}
}

// pathSwitchable reports whether the tier lets the user flip between the
// challenge and spend paths before committing.
func pathSwitchable(cfg domain.TierConfig) bool {
	return !cfg.RequireChallenge && !cfg.RequireSpend
}
