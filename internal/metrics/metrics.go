package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Gate Metrics
var (
	SessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
		[]string{LabelTier},
	)

	SessionsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEnded,
			Help: HelpTextSessionsEnded,
		},
		[]string{LabelTier},
	)

	CooldownsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownsStarted,
			Help: HelpTextCooldownsStarted,
		},
		[]string{LabelTier},
	)

	LockoutsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLockoutsTriggered,
			Help: HelpTextLockoutsTriggered,
		},
		[]string{LabelTier},
	)

	ChallengeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengeAttempts,
			Help: HelpTextChallengeAttempts,
		},
		[]string{LabelTier, LabelOutcome},
	)

	ChallengeSolveTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameChallengeSolveTime,
			Help:    HelpTextChallengeSolveTime,
			Buckets: SolveTimeBuckets,
		},
		[]string{LabelTier},
	)

	SpendsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpendsRejected,
			Help: HelpTextSpendsRejected,
		},
	)
)

// Economy Metrics
var (
	MinutesEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMinutesEarned,
			Help: HelpTextMinutesEarned,
		},
		[]string{LabelSource},
	)

	MinutesSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMinutesSpent,
			Help: HelpTextMinutesSpent,
		},
		[]string{LabelSource},
	)

	StageChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStageChanges,
			Help: HelpTextStageChanges,
		},
		[]string{LabelStage},
	)
)
