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

// Game metric names
const (
	MetricNameActionsStarted    = "actions_started_total"
	MetricNameActionsCompleted  = "actions_completed_total"
	MetricNameActionsCancelled  = "actions_cancelled_total"
	MetricNameActionsRejected   = "actions_rejected_total"
	MetricNameStagesAdvanced    = "stages_advanced_total"
	MetricNameResourcesGranted  = "resources_granted_total"
	MetricNameResourcesProduced = "resources_produced_total"
	MetricNameUpkeepShortfalls  = "job_upkeep_shortfalls_total"
	MetricNameBuildingsBuilt    = "buildings_constructed_total"
	MetricNameFlagsSet          = "flags_set_total"
	MetricNameSavesTotal        = "game_saves_total"
	MetricNameCrewAssigned      = "crew_assigned"
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

// Game metric help text
const (
	HelpTextActionsStarted    = "Total number of actions started"
	HelpTextActionsCompleted  = "Total number of actions completed"
	HelpTextActionsCancelled  = "Total number of actions cancelled"
	HelpTextActionsRejected   = "Total number of action starts rejected"
	HelpTextStagesAdvanced    = "Total number of action stages completed"
	HelpTextResourcesGranted  = "Total resources granted by action rewards"
	HelpTextResourcesProduced = "Total resources produced by crew jobs"
	HelpTextUpkeepShortfalls  = "Total production ticks scaled down by missing upkeep"
	HelpTextBuildingsBuilt    = "Total number of buildings constructed"
	HelpTextFlagsSet          = "Total number of game flags set"
	HelpTextSavesTotal        = "Total number of save attempts"
	HelpTextCrewAssigned      = "Crew currently assigned per job"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelAction   = "action"
	LabelReason   = "reason"
	LabelResource = "resource"
	LabelJob      = "job"
	LabelBuilding = "building"
	LabelFlag     = "flag"
	LabelResult   = "result"
)

// Save results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
