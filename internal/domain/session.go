package domain

import "time"

// Session is one timed-access window for a protected app. At most one
// active session exists per app at any observation point.
type Session struct {
	AppID          string    `json:"app_id"`
	StartTime      time.Time `json:"start_time"`
	AllowedSeconds int       `json:"allowed_seconds"`
	TierUsed       Tier      `json:"tier_used"`
	Active         bool      `json:"active"`
}

// ElapsedSeconds returns whole seconds since the session started.
func (s Session) ElapsedSeconds(now time.Time) int {
	return int(now.Sub(s.StartTime).Seconds())
}

// Expired reports whether the allowance has been used up as of now.
func (s Session) Expired(now time.Time) bool {
	return s.ElapsedSeconds(now) >= s.AllowedSeconds
}

// Cooldown is an enforced rest period for one app. Reads past EndsAt delete
// the record; an expired cooldown is never observed.
type Cooldown struct {
	AppID  string    `json:"app_id"`
	EndsAt time.Time `json:"ends_at"`
	Tier   Tier      `json:"tier"`
	// Lockout marks cooldowns triggered by repeated challenge failures
	// rather than a session ending.
	Lockout bool `json:"lockout"`
}

// RemainingSeconds returns whole seconds until the cooldown lifts, rounded
// up, clamped at zero.
func (c Cooldown) RemainingSeconds(now time.Time) int {
	d := c.EndsAt.Sub(now)
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	return secs
}
