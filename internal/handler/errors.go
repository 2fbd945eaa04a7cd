package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	ErrMsgSaveFailed   = "Failed to save game"
	ErrMsgSaveDisabled = "Saving is disabled"

	ErrMsgInvalidLimit = "limit must be a non-negative integer"
)

// Query parameters
const (
	QueryParamLimit = "limit"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	ErrMsgActionNotFoundError   = "Action not found"
	ErrMsgActionLockedError     = "You haven't discovered that yet"
	ErrMsgActionFinishedError   = "That's already done"
	ErrMsgActionInProgressError = "You're already busy with something"
	ErrMsgNoActiveActionError   = "Nothing to cancel"
	ErrMsgNotCancelableError    = "That can't be cancelled"

	ErrMsgJobNotFoundError      = "Job not found"
	ErrMsgJobLockedError        = "That job is locked"
	ErrMsgNoFreeSlotsError      = "No free slots for that job"
	ErrMsgNoIdleCrewError       = "No idle crew"
	ErrMsgNotAssignedError      = "Not that many crew assigned"
	ErrMsgBuildingNotFoundError = "Building not found"
	ErrMsgBuildingLockedError   = "That building is locked"
	ErrMsgBuildingMaxedError    = "Can't build any more of those"

	ErrMsgStoryNotFoundError = "Story not found"
)

// Success messages for API responses
const (
	MsgActionStarted   = "Action started"
	MsgCancelPending   = "Cancel again to confirm"
	MsgActionCancelled = "Action cancelled"
	MsgCrewAssigned    = "Crew assigned"
	MsgCrewUnassigned  = "Crew unassigned"
	MsgGameSaved       = "Game saved"
)

// Health check responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgNoDatabase     = "no database configured"
	HealthMsgDatabaseDown   = "database connection failed"
	HealthCheckTimeout      = 2 // seconds
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Request failed"
	LogMsgServiceRejected   = "Request rejected"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgActionStartCalled = "Start action requested"
	LogMsgCancelCalled      = "Cancel action requested"
	LogMsgAssignCalled      = "Assign crew requested"
	LogMsgJournalFailed     = "Failed to read event journal"
)
