package bootstrap

import (
	"log/slog"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
)

// InitializeEventSystem creates the in-process event bus and the resilient
// publisher services publish through. Subscribers register on the bus; a
// failing subscriber is retried with exponential backoff instead of failing
// the request that published the event.
func InitializeEventSystem() (event.Bus, *event.ResilientPublisher) {
	eventBus := event.NewMemoryBus()
	resilientPublisher := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay)

	return eventBus, resilientPublisher
}
