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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Raid metric names
const (
	MetricNameTapsApplied        = "raid_taps_applied_total"
	MetricNameDamageDealt        = "raid_damage_dealt_total"
	MetricNameCritsLanded        = "raid_crits_landed_total"
	MetricNameBossesKilled       = "raid_bosses_killed_total"
	MetricNameRagePhases         = "raid_rage_phases_total"
	MetricNamePlayersOnline      = "raid_players_online"
	MetricNameRewardsDistributed = "raid_rewards_distributed_total"
	MetricNameRewardsClaimed     = "raid_rewards_claimed_total"
	MetricNameSSEClients         = "sse_clients_connected"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Raid metric help text
const (
	HelpTextTapsApplied        = "Total number of taps accepted by the arena"
	HelpTextDamageDealt        = "Total accepted damage applied to bosses"
	HelpTextCritsLanded        = "Total number of critical hits"
	HelpTextBossesKilled       = "Total number of boss kills"
	HelpTextRagePhases         = "Total number of rage phase escalations"
	HelpTextPlayersOnline      = "Current number of connected combat sessions"
	HelpTextRewardsDistributed = "Total number of pending reward records created"
	HelpTextRewardsClaimed     = "Total number of rewards claimed"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelBoss   = "boss"
	LabelPhase  = "phase"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. Tuned for an in-memory apply path that should answer in
// single-digit milliseconds.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
