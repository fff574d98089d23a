package gate

import "github.com/focusnest/focusgate/internal/domain"

// SpendQuote prices one allowance option against the current balance.
type SpendQuote struct {
	Minutes    int  `json:"minutes"`
	Cost       int  `json:"cost"`
	Affordable bool `json:"affordable"`
}

// SessionView is the running-session slice of a gate state.
type SessionView struct {
	Tier             domain.Tier `json:"tier"`
	RemainingSeconds int         `json:"remaining_seconds"`
	Countdown        string      `json:"countdown"`
}

// CooldownView is the resting slice of a gate state.
type CooldownView struct {
	Tier             domain.Tier `json:"tier"`
	RemainingSeconds int         `json:"remaining_seconds"`
	Countdown        string      `json:"countdown"`
	Lockout          bool        `json:"lockout,omitempty"`
}

// AttemptResult reports how the most recent challenge submission went.
type AttemptResult struct {
	Correct      bool `json:"correct"`
	TimedOut     bool `json:"timed_out"`
	PointsEarned int  `json:"points_earned"`
	LockedOut    bool `json:"locked_out"`
}

// State is the full gate picture for one app, shaped for the overlay.
// Exactly the fields relevant to Phase are populated.
type State struct {
	AppID         string              `json:"app_id"`
	Phase         Phase               `json:"phase"`
	Tiers         []domain.TierConfig `json:"tiers,omitempty"`
	Tier          *domain.TierConfig  `json:"tier,omitempty"`
	Challenge     *domain.Challenge   `json:"challenge,omitempty"`
	FailCount     int                 `json:"fail_count,omitempty"`
	CanSwitchPath bool                `json:"can_switch_path,omitempty"`
	SpendOptions  []SpendQuote        `json:"spend_options,omitempty"`
	Balance       int                 `json:"balance"`
	Result        *AttemptResult      `json:"result,omitempty"`
	Session       *SessionView        `json:"session,omitempty"`
	Cooldown      *CooldownView       `json:"cooldown,omitempty"`
}
