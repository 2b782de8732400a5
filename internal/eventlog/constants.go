package eventlog

import "time"

// Payload keys that identify the subject of an event
const (
	PayloadKeyTreeID     = "tree_id"
	PayloadKeyDonationID = "donation_id"
)

// Listing and retention defaults
const (
	DefaultListLimit = 50
	MaxListLimit     = 500

	DefaultRetention       = 30 * 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Error messages
const (
	ErrMsgEncodePayload = "failed to encode event payload"
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to write event log entry"
	LogMsgEventLogged      = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
