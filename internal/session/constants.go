package session

// LockoutCooldownMinutes is the fixed rest period applied after too many
// consecutive challenge failures, regardless of the tier's cooldown range.
const LockoutCooldownMinutes = 3

// SecondsPerMinute converts allowance minutes to stored seconds.
const SecondsPerMinute = 60
