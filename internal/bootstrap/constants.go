package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting Green Legacy API"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	// StorageInitTimeout bounds migrations and seeding at startup
	StorageInitTimeout = 60 * time.Second
)

const (
	LogMsgStorageInitialized = "Storage initialized"
	LogMsgDatasetLoaded      = "Seed dataset loaded"
	LogMsgSeedingDatabase    = "Seeding database from embedded dataset..."

	ErrMsgFailedLoadDataset    = "failed to load seed dataset"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrateDB      = "failed to migrate database"
	ErrMsgFailedSeedDB         = "failed to seed database"
	ErrMsgUnknownStorageDriver = "unknown storage driver"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgStatsHandlerRegistered     = "Stats event handler registered"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "Activity stream subscriber registered"
	LogMsgEventLogRegistered         = "Event log subscriber registered"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// WorkerPoolSize is the number of goroutines running background jobs
	WorkerPoolSize = 2

	// WorkerQueueSize bounds jobs waiting for a free worker
	WorkerQueueSize = 16

	JobNameEventLogCleanup = "event_log_cleanup"
)

const (
	LogMsgBackgroundJobsStarted = "Background jobs started"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgStoppingActivityStream     = "Stopping activity stream..."
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs..."
	LogMsgClosingStorage             = "Closing storage..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
