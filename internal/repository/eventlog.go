package repository

import (
	"context"
	"time"
)

// EventLog stores the audit trail of published domain events
type EventLog interface {
	// LogEvent stores an entry, assigning its ID
	LogEvent(ctx context.Context, entry *EventLogEntry) error

	// ListEvents returns matching entries, newest first
	ListEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	// CleanupOldEvents removes entries created before the cutoff
	CleanupOldEvents(ctx context.Context, before time.Time) (int64, error)
}

// EventLogEntry is one logged event. SubjectID is the tree or donation the event is about.
type EventLogEntry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"eventType"`
	SubjectID string                 `json:"subjectId,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// EventLogFilter filters entries; zero values match everything
type EventLogFilter struct {
	EventType string
	SubjectID string
	Since     *time.Time
	Limit     int
}
