package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration
const (
	RetryQueueBufferSize     = 256
	RetryInitialDelaySeconds = 2
	RetryMaxAttempts         = 5
)

// DeadLetterFilePermissions is the file mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Log messages
const (
	LogMsgEventPublishFailed    = "Event delivery failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write dead letter"
	LogMsgEventRetryExhausted   = "Event retries exhausted, dead-lettering"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay doubles the base delay per attempt: 2s, 4s, 8s, ...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
