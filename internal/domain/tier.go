package domain

// Tier is the friction level a user picks before unlocking a protected app.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// ValidTiers lists all known tiers in ascending friction order.
var ValidTiers = []Tier{TierEasy, TierMedium, TierHard}

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// Promote returns the next harder tier, or t unchanged at the top.
func (t Tier) Promote() Tier {
	switch t {
	case TierEasy:
		return TierMedium
	case TierMedium:
		return TierHard
	}
	return t
}

// Demote returns the next easier tier, or t unchanged at the bottom.
func (t Tier) Demote() Tier {
	switch t {
	case TierHard:
		return TierMedium
	case TierMedium:
		return TierEasy
	}
	return t
}

// CooldownRange is a closed interval of minutes a post-session cooldown is
// drawn from. Max == 0 means the tier enforces no rest period.
type CooldownRange struct {
	Min int `json:"min" yaml:"min" validate:"gte=0"`
	Max int `json:"max" yaml:"max" validate:"gte=0,gtefield=Min"`
}

// TierConfig is the immutable configuration bound to a tier.
type TierConfig struct {
	Tier             Tier          `json:"tier" yaml:"tier" validate:"required,oneof=easy medium hard"`
	Label            string        `json:"label" yaml:"label" validate:"required"`
	Description      string        `json:"description" yaml:"description"`
	AllowanceOptions []int         `json:"allowance_options" yaml:"allowance_options" validate:"required,min=1,dive,gt=0"`
	CooldownMinutes  CooldownRange `json:"cooldown_minutes" yaml:"cooldown_minutes"`
	RequireChallenge bool          `json:"require_challenge" yaml:"require_challenge"`
	RequireSpend     bool          `json:"require_spend" yaml:"require_spend"`
	// MaxFailsBeforeLockout is the consecutive-failure count that triggers a
	// fixed lockout cooldown. 0 disables the lockout entirely.
	MaxFailsBeforeLockout int `json:"max_fails_before_lockout" yaml:"max_fails_before_lockout" validate:"gte=0"`
}

// FirstAllowance returns the shortest allowance option in minutes.
// Challenge-path unlocks always grant this minimum.
func (c TierConfig) FirstAllowance() int {
	if len(c.AllowanceOptions) == 0 {
		return 0
	}
	return c.AllowanceOptions[0]
}

// HasAllowance reports whether minutes is one of the tier's allowance options.
func (c TierConfig) HasAllowance(minutes int) bool {
	for _, m := range c.AllowanceOptions {
		if m == minutes {
			return true
		}
	}
	return false
}
