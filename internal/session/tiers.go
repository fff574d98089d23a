package session

import (
	"fmt"

	"github.com/focusnest/focusgate/internal/domain"
)

// DefaultTierConfigs returns the built-in friction ladder. Deployments can
// override labels and tuning through the tiers config file; the set of
// tiers itself is fixed.
func DefaultTierConfigs() []domain.TierConfig {
	return []domain.TierConfig{
		{
			Tier:             domain.TierEasy,
			Label:            "Easy Pass",
			Description:      "Quick challenge, short access",
			AllowanceOptions: []int{2, 3, 5},
			CooldownMinutes:  domain.CooldownRange{Min: 0, Max: 0},
			RequireChallenge: true,
			RequireSpend:     false,
		},
		{
			Tier:             domain.TierMedium,
			Label:            "Medium",
			Description:      "Solve a challenge OR spend Plant Age",
			AllowanceOptions: []int{5, 10, 20},
			CooldownMinutes:  domain.CooldownRange{Min: 2, Max: 5},
			// Neither flag set: the user picks challenge or spend.
			RequireChallenge: false,
			RequireSpend:     false,
		},
		{
			Tier:                  domain.TierHard,
			Label:                 "Hard",
			Description:           "Challenge + spend, long cooldown",
			AllowanceOptions:      []int{5, 10},
			CooldownMinutes:       domain.CooldownRange{Min: 5, Max: 10},
			RequireChallenge:      true,
			RequireSpend:          true,
			MaxFailsBeforeLockout: 3,
		},
	}
}

// TierSet is an immutable, ordered collection of tier configurations.
type TierSet struct {
	ordered []domain.TierConfig
	byTier  map[domain.Tier]domain.TierConfig
}

// NewTierSet builds a TierSet from configs. Every valid tier must appear
// exactly once.
func NewTierSet(configs []domain.TierConfig) (*TierSet, error) {
	byTier := make(map[domain.Tier]domain.TierConfig, len(configs))
	for _, cfg := range configs {
		if !cfg.Tier.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, cfg.Tier)
		}
		if _, dup := byTier[cfg.Tier]; dup {
			return nil, fmt.Errorf("duplicate tier config for %q", cfg.Tier)
		}
		byTier[cfg.Tier] = cfg
	}
	for _, tier := range domain.ValidTiers {
		if _, ok := byTier[tier]; !ok {
			return nil, fmt.Errorf("missing tier config for %q", tier)
		}
	}

	ordered := make([]domain.TierConfig, 0, len(domain.ValidTiers))
	for _, tier := range domain.ValidTiers {
		ordered = append(ordered, byTier[tier])
	}
	return &TierSet{ordered: ordered, byTier: byTier}, nil
}

// MustDefaultTierSet returns the built-in tier set; the defaults are known
// complete, so construction cannot fail.
func MustDefaultTierSet() *TierSet {
	set, err := NewTierSet(DefaultTierConfigs())
	if err != nil {
		panic(err)
	}
	return set
}

// Get returns the configuration for a tier.
func (ts *TierSet) Get(tier domain.Tier) (domain.TierConfig, error) {
	cfg, ok := ts.byTier[tier]
	if !ok {
		return domain.TierConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	return cfg, nil
}

// All returns the configurations in ascending friction order.
func (ts *TierSet) All() []domain.TierConfig {
	out := make([]domain.TierConfig, len(ts.ordered))
	copy(out, ts.ordered)
	return out
}
