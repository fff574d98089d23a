package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Gate metric names
const (
	MetricNameSessionsStarted    = "gate_sessions_started_total"
	MetricNameSessionsEnded      = "gate_sessions_ended_total"
	MetricNameCooldownsStarted   = "gate_cooldowns_started_total"
	MetricNameLockoutsTriggered  = "gate_lockouts_triggered_total"
	MetricNameChallengeAttempts  = "gate_challenge_attempts_total"
	MetricNameChallengeSolveTime = "gate_challenge_solve_time_seconds"
	MetricNameSpendsRejected     = "gate_spends_rejected_total"
)

// Economy metric names
const (
	MetricNameMinutesEarned = "plant_minutes_earned_total"
	MetricNameMinutesSpent  = "plant_minutes_spent_total"
	MetricNameStageChanges  = "plant_stage_changes_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Gate metric help text
const (
	HelpTextSessionsStarted    = "Total number of allowance sessions started"
	HelpTextSessionsEnded      = "Total number of allowance sessions ended"
	HelpTextCooldownsStarted   = "Total number of cooldowns started"
	HelpTextLockoutsTriggered  = "Total number of failure lockouts triggered"
	HelpTextChallengeAttempts  = "Total number of graded challenge attempts"
	HelpTextChallengeSolveTime = "Challenge solve time in seconds"
	HelpTextSpendsRejected     = "Total number of rejected spend attempts"
)

// Economy metric help text
const (
	HelpTextMinutesEarned = "Total Plant Minutes credited"
	HelpTextMinutesSpent  = "Total Plant Minutes debited"
	HelpTextStageChanges  = "Total growth stage advancements"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelStage   = "stage"
)

// Label values for challenge outcomes
const (
	OutcomeCorrect  = "correct"
	OutcomeWrong    = "wrong"
	OutcomeTimedOut = "timed_out"
)

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected type"
)

// HTTPLatencyBuckets suit a loopback daemon: most requests are sub-ms.
var HTTPLatencyBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// SolveTimeBuckets cover the 10s-90s challenge windows.
var SolveTimeBuckets = []float64{1, 2.5, 5, 10, 15, 30, 45, 60, 90, 120}
