package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

func TestEventLog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now().UTC()

	for _, e := range []repository.EventLogEntry{
		{EventType: "tree.planted", SubjectID: "t1", Payload: map[string]interface{}{"name": "Iroko"}, CreatedAt: now.Add(-48 * time.Hour)},
		{EventType: "tree.updated", SubjectID: "t1", Payload: map[string]interface{}{"status": "growing"}},
		{EventType: "donation.created", SubjectID: "d1", Payload: map[string]interface{}{"amount": 5000}},
	} {
		require.NoError(t, s.LogEvent(ctx, &e))
		assert.NotZero(t, e.ID)
	}

	all, err := s.ListEvents(ctx, repository.EventLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{all[0].ID, all[1].ID, all[2].ID})

	bySubject, err := s.ListEvents(ctx, repository.EventLogFilter{SubjectID: "t1"})
	require.NoError(t, err)
	assert.Len(t, bySubject, 2)

	byType, err := s.ListEvents(ctx, repository.EventLogFilter{EventType: "donation.created"})
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	since := now.Add(-time.Hour)
	recent, err := s.ListEvents(ctx, repository.EventLogFilter{Since: &since, Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "donation.created", recent[0].EventType)

	// Entries are copies
	all[0].Payload["amount"] = 1
	again, _ := s.ListEvents(ctx, repository.EventLogFilter{Limit: 1})
	assert.Equal(t, 5000, again[0].Payload["amount"])

	deleted, err := s.CleanupOldEvents(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, _ := s.ListEvents(ctx, repository.EventLogFilter{})
	assert.Len(t, remaining, 2)
}
