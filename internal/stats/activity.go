package stats

import (
	"sync"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// ActivityFeed is a bounded newest-first list of activity entries
type ActivityFeed struct {
	mu       sync.RWMutex
	entries  []domain.ActivityEvent
	capacity int
}

// NewActivityFeed creates a feed that keeps at most capacity entries
func NewActivityFeed(capacity int) *ActivityFeed {
	return &ActivityFeed{capacity: capacity}
}

// Push adds an entry at the front, dropping the oldest past capacity
func (f *ActivityFeed) Push(e domain.ActivityEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]domain.ActivityEvent{e}, f.entries...)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
}

// Snapshot returns a copy of the feed, never nil
func (f *ActivityFeed) Snapshot() []domain.ActivityEvent {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.ActivityEvent, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of entries held
func (f *ActivityFeed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
