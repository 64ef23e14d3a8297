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
)

// Farm Metrics
var (
	HarvestsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsCollected,
			Help: HelpTextHarvestsCollected,
		},
		[]string{LabelCharacter},
	)

	SeedsGained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsGained,
			Help: HelpTextSeedsGained,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	SeedsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsSpent,
			Help: HelpTextSeedsSpent,
		},
	)

	ActionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsRejected,
			Help: HelpTextActionsRejected,
		},
		[]string{LabelAction, LabelReason},
	)

	StreaksBroken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreaksBroken,
			Help: HelpTextStreaksBroken,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)
)

// Collaborator Metrics
var (
	StoreFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreFailures,
			Help: HelpTextStoreFailures,
		},
		[]string{LabelOperation},
	)

	LeaderboardSyncFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardSyncFailures,
			Help: HelpTextLeaderboardSyncFailures,
		},
	)

	LeaderboardCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardCacheLookups,
			Help: HelpTextLeaderboardCacheLookups,
		},
		[]string{LabelResult},
	)

	JobsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJobsDropped,
			Help: HelpTextJobsDropped,
		},
	)

	JobsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJobsFailed,
			Help: HelpTextJobsFailed,
		},
	)

	DayRollovers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDayRollovers,
			Help: HelpTextDayRollovers,
		},
	)
)
