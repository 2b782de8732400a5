package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: TreePlanted}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(TreeRemoved, handler)
	bus.Subscribe(TreeRemoved, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: TreeRemoved}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calledAfterFailure := false

	bus.Subscribe(DonationCreated, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(DonationCreated, func(ctx context.Context, event Event) error {
		calledAfterFailure = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: DonationCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, calledAfterFailure, "later handlers still run")
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	var seen []Type

	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	}, AllTypes...)

	for _, typ := range AllTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}
	assert.Equal(t, AllTypes, seen)
}

func TestConstructors(t *testing.T) {
	tree := domain.Tree{
		ID:       "7",
		Name:     "Jos Pine",
		Species:  "Pine (Pinus caribaea)",
		Status:   domain.TreeStatusHealthy,
		Location: domain.Location{State: "Plateau", City: "Jos"},
	}

	planted := NewTreePlantedEvent(tree)
	assert.Equal(t, TreePlanted, planted.Type)
	assert.Equal(t, EventSchemaVersion, planted.Version)
	payload, err := planted.TreePayload()
	require.NoError(t, err)
	assert.Equal(t, "Plateau", payload.State)
	assert.False(t, planted.OccurredAt.IsZero())

	removed := NewTreeRemovedEvent(tree)
	assert.Equal(t, TreeRemoved, removed.Type)
	assert.Equal(t, TreeRemovedPayloadV1{TreeID: "7", Name: "Jos Pine", State: "Plateau"}, removed.Payload)

	ts := time.Date(2024, 8, 31, 9, 15, 0, 0, time.UTC)
	donated := NewDonationCreatedEvent(domain.Donation{ID: "d1", Amount: 50000, TreesPlanted: 10, Timestamp: ts})
	assert.Equal(t, DonationCreated, donated.Type)
	assert.Equal(t, ts, donated.OccurredAt)
}

func TestPayloadAccessors_AcceptSerializedForms(t *testing.T) {
	raw := map[string]interface{}{"donation_id": "d1", "amount": 25000, "trees_planted": 5}
	want := DonationCreatedPayloadV1{DonationID: "d1", Amount: 25000, TreesPlanted: 5}

	for name, payload := range map[string]interface{}{
		"map":        raw,
		"raw json":   json.RawMessage(`{"donation_id":"d1","amount":25000,"trees_planted":5}`),
		"pointer":    &want,
		"minor bump": want,
	} {
		t.Run(name, func(t *testing.T) {
			version := EventSchemaVersion
			if name == "minor bump" {
				version = "1.4"
			}
			evt := Event{Version: version, Type: DonationCreated, Payload: payload}

			got, err := evt.DonationPayload()

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestPayloadAccessors_Mismatch(t *testing.T) {
	donated := NewDonationCreatedEvent(domain.Donation{ID: "d1", Amount: 5000, TreesPlanted: 1})
	removed := NewTreeRemovedEvent(domain.Tree{ID: "7", Name: "Jos Pine"})

	tests := []struct {
		name string
		call func() error
	}{
		{"tree payload from a donation", func() error { _, err := donated.TreePayload(); return err }},
		{"removal payload from a donation", func() error { _, err := donated.TreeRemovedPayload(); return err }},
		{"donation payload from a removal", func() error { _, err := removed.DonationPayload(); return err }},
		{"newer major version", func() error {
			evt := donated
			evt.Version = "2.0"
			_, err := evt.DonationPayload()
			return err
		}},
		{"missing version", func() error {
			evt := donated
			evt.Version = ""
			_, err := evt.DonationPayload()
			return err
		}},
		{"nil payload", func() error {
			_, err := Event{Version: EventSchemaVersion, Type: TreeRemoved}.TreeRemovedPayload()
			return err
		}},
		{"wrong shape", func() error {
			_, err := Event{Version: EventSchemaVersion, Type: TreePlanted, Payload: "not a payload"}.TreePayload()
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrPayloadMismatch)
		})
	}
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(2*time.Second, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(2*time.Second, 5))
}
