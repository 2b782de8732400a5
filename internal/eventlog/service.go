// Package eventlog keeps an audit trail of the domain events published on the bus.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every domain event type
	Subscribe(bus event.Bus)

	// List returns logged events newest first. The limit is clamped to MaxListLimit.
	List(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes entries older than the retention period
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	event.SubscribeAll(bus, s.handleEvent, event.AllTypes...)
}

// handleEvent flattens the typed payload to JSON-shaped data and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toMap(evt.Payload)
	if err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	entry := &repository.EventLogEntry{
		EventType: string(evt.Type),
		SubjectID: subjectID(payload),
		Payload:   payload,
		Metadata:  evt.Metadata,
		CreatedAt: evt.OccurredAt,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "subject_id", entry.SubjectID, "id", entry.ID)
	return nil
}

func (s *service) List(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	filter.Limit = min(filter.Limit, MaxListLimit)
	return s.repo.ListEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}

func toMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodePayload, err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodePayload, err)
	}
	return out, nil
}

func subjectID(payload map[string]interface{}) string {
	for _, key := range []string{PayloadKeyTreeID, PayloadKeyDonationID} {
		if id, ok := payload[key].(string); ok && id != "" {
			return id
		}
	}
	return ""
}
