package eventlog

import "github.com/osse101/CrashSite_Go/internal/event"

// JournaledTypes are the event types written to the journal. Log lines are
// left out; they are already kept in the save's message log.
var JournaledTypes = []event.Type{
	event.ActionCompleted,
	event.ActionCancelled,
	event.StageAdvanced,
	event.UnlockApplied,
	event.FlagSet,
	event.BuildingConstructed,
	event.JobAssigned,
	event.JobUnassigned,
}

// Defaults
const (
	DefaultRecentLimit   = 50
	MaxRecentLimit       = 500
	DefaultRetentionDays = 30
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
	LogMsgJournalEnabled   = "Event journal subscribed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldSlot          = "slot"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// Error messages
const (
	ErrMsgEncodePayload = "failed to encode event payload"
	ErrMsgInsertEvent   = "failed to insert event"
	ErrMsgQueryEvents   = "failed to query events"
	ErrMsgCleanup       = "failed to delete old events"
)
