package runner

import "time"

// Runner timing defaults
const (
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultConfirmWindow = 2 * time.Second
)

// RefundRate is the share of cost and consumed drain returned on cancel
const RefundRate = 0.5

// Player-facing log text
const (
	LogTextStarted       = "Started %s"
	LogTextCompleted     = "Completed %s"
	LogTextCompletedWith = "Completed %s: %s"
	LogTextRejected      = "Cannot %s: not enough %s"
	LogTextCancelPending = "Click cancel again to abandon %s"
	LogTextCancelled     = "Abandoned %s"
	LogTextDepleted      = "Ran out of %s. %s was abandoned"
	LogTextRefunded      = "%s Recovered %s."
)

// Log messages
const (
	LogMsgRunnerStarted  = "Action runner started"
	LogMsgRunnerStopped  = "Action runner stopped"
	LogMsgTickFailed     = "Action tick failed"
	LogMsgRevertFailed   = "Cancel revert failed"
	LogMsgActionRejected = "Action start rejected"
)
