package memory

import (
	"context"
	"maps"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// LogEvent appends an entry, assigning the next ID
func (s *Store) LogEvent(_ context.Context, entry *repository.EventLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEventID++
	entry.ID = s.nextEventID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.events = append(s.events, cloneEntry(*entry))
	return nil
}

// ListEvents returns matching entries newest first
func (s *Store) ListEvents(_ context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []repository.EventLogEntry{}
	for i := len(s.events) - 1; i >= 0; i-- {
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
		e := s.events[i]
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.SubjectID != "" && e.SubjectID != filter.SubjectID {
			continue
		}
		if filter.Since != nil && e.CreatedAt.Before(*filter.Since) {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	return out, nil
}

// CleanupOldEvents drops entries created before the cutoff
func (s *Store) CleanupOldEvents(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, e := range s.events {
		if !e.CreatedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	deleted := int64(len(s.events) - len(kept))
	clear(s.events[len(kept):])
	s.events = kept
	return deleted, nil
}

func cloneEntry(e repository.EventLogEntry) repository.EventLogEntry {
	e.Payload = maps.Clone(e.Payload)
	e.Metadata = maps.Clone(e.Metadata)
	return e
}
