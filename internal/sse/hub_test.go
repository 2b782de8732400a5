package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlegacy-ng/greenlegacy/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	donationsOnly := hub.Register([]string{"donation.created"})
	waitForClients(t, hub, 2)

	hub.Broadcast("tree.planted", TreePayload{ID: "t1"})
	hub.Broadcast("donation.created", DonationPayload{ID: "d1"})

	assert.Equal(t, "tree.planted", receive(t, all).Type)
	assert.Equal(t, "donation.created", receive(t, all).Type)

	got := receive(t, donationsOnly)
	assert.Equal(t, "donation.created", got.Type)
	assert.Equal(t, DonationPayload{ID: "d1"}, got.Payload)
	assert.NotEmpty(t, got.ID)
	assert.Len(t, donationsOnly.EventChannel, 0)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndIsIdempotent(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	hub := NewHub()
	hub.Start()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())

	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "register after stop yields a closed channel")

	// Must not block or panic
	hub.Unregister(late.ID)
	hub.Broadcast("tree.planted", nil)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "tree.removed", Timestamp: "2024-09-01T00:00:00Z", Payload: TreeRemovedPayload{ID: "7"}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: tree.removed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"payload":{"id":"7","name":"","state":""}`)
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, parseTypes(""))
	assert.Equal(t, []string{"tree.planted", "donation.created"}, parseTypes(" tree.planted, ,donation.created"))
}
