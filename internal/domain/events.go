package domain

// Event type constants published on the event bus. The presentation layer
// (SSE, Discord notifier, metrics) subscribes to these; the core never calls
// into presentation code directly.
//
// Event types follow the pattern: <entity>.<action> (e.g., "action.started")
const (
	EventTypeActionStarted        = "action.started"
	EventTypeActionRejected       = "action.rejected"
	EventTypeActionCompleted      = "action.completed"
	EventTypeActionCancelPending  = "action.cancel_pending"
	EventTypeActionCancelReverted = "action.cancel_reverted"
	EventTypeActionCancelled      = "action.cancelled"

	EventTypeStageAdvanced  = "stage.advanced"
	EventTypeUnlockApplied  = "unlock.applied"
	EventTypeStoryTriggered = "story.triggered"
	EventTypeFlagSet        = "flag.set"

	EventTypeJobAssigned         = "job.assigned"
	EventTypeJobUnassigned       = "job.unassigned"
	EventTypeBuildingConstructed = "building.constructed"

	EventTypeLogMessage = "log.message"
	EventTypeGameSaved  = "game.saved"
)
