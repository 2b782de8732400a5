package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// DefaultRetryDelay is the delay before the first retry
	DefaultRetryDelay = 2 * time.Second

	// DefaultMaxRetries is the default maximum number of retry attempts
	DefaultMaxRetries = 5
)

// Log message constants
const (
	LogMsgEventPublishFailed   = "Event publish failed, retrying in background"
	LogMsgEventRetryFailed     = "Event retry failed"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventRetryExhausted  = "Event retry exhausted, dropping event"
	LogMsgEventDroppedShutdown = "Event retry abandoned during shutdown"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Formula: baseDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
