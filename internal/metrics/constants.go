package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Farm metric names
const (
	MetricNameHarvestsCollected = "farm_harvests_collected_total"
	MetricNameSeedsGained       = "farm_seeds_gained_total"
	MetricNameUpgradesPurchased = "farm_upgrades_purchased_total"
	MetricNameSeedsSpent        = "farm_seeds_spent_total"
	MetricNameActionsRejected   = "farm_actions_rejected_total"
	MetricNameStreaksBroken     = "farm_streaks_broken_total"
	MetricNameActiveSessions    = "farm_active_sessions"
	MetricNameSessionsEvicted   = "farm_sessions_evicted_total"
)

// Collaborator metric names
const (
	MetricNameStoreFailures           = "farm_store_failures_total"
	MetricNameLeaderboardSyncFailures = "farm_leaderboard_sync_failures_total"
	MetricNameLeaderboardCacheLookups = "farm_leaderboard_cache_lookups_total"
	MetricNameJobsDropped             = "farm_jobs_dropped_total"
	MetricNameJobsFailed              = "farm_jobs_failed_total"
	MetricNameDayRollovers            = "farm_day_rollovers_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Farm metric help text
const (
	HelpTextHarvestsCollected = "Total number of collections by character"
	HelpTextSeedsGained       = "Total seeds credited by collections"
	HelpTextUpgradesPurchased = "Total number of upgrades purchased"
	HelpTextSeedsSpent        = "Total seeds debited by purchases"
	HelpTextActionsRejected   = "Total number of rejected actions by reason"
	HelpTextStreaksBroken     = "Total number of streaks lost"
	HelpTextActiveSessions    = "Number of player sessions held in memory"
	HelpTextSessionsEvicted   = "Total number of idle player sessions dropped from memory"
)

// Collaborator metric help text
const (
	HelpTextStoreFailures           = "Total number of state store failures"
	HelpTextLeaderboardSyncFailures = "Total number of failed leaderboard syncs"
	HelpTextLeaderboardCacheLookups = "Leaderboard top-N cache lookups by result"
	HelpTextJobsDropped             = "Background jobs dropped because the queue was full"
	HelpTextJobsFailed              = "Background jobs that returned an error"
	HelpTextDayRollovers            = "Total number of day rollover runs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelCharacter = "character"
	LabelUpgrade   = "upgrade"
	LabelAction    = "action"
	LabelReason    = "reason"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Label values
const (
	OperationLoad = "load"
	OperationSave = "save"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
)
