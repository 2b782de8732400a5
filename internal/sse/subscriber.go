package sse

import (
	"context"
	"fmt"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.TreePlanted, s.handleTree)
	s.bus.Subscribe(event.TreeUpdated, s.handleTree)
	s.bus.Subscribe(event.TreeRemoved, s.handleTreeRemoved)
	s.bus.Subscribe(event.DonationCreated, s.handleDonationCreated)

	logger.Info(LogMsgSubscriberReady, "types", event.AllTypes)
}

func (s *Subscriber) handleTree(ctx context.Context, evt event.Event) error {
	p, err := evt.TreePayload()
	if err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}

	adopted, _ := evt.GetMetadataValue(tree.MetadataKeyAdopted).(bool)
	s.broadcast(ctx, evt, TreePayload{
		ID:        p.TreeID,
		Name:      p.Name,
		Species:   p.Species,
		State:     p.State,
		City:      p.City,
		Status:    string(p.Status),
		DonorName: p.DonorName,
		Adopted:   adopted,
	})
	return nil
}

func (s *Subscriber) handleTreeRemoved(ctx context.Context, evt event.Event) error {
	p, err := evt.TreeRemovedPayload()
	if err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}

	s.broadcast(ctx, evt, TreeRemovedPayload{ID: p.TreeID, Name: p.Name, State: p.State})
	return nil
}

func (s *Subscriber) handleDonationCreated(ctx context.Context, evt event.Event) error {
	p, err := evt.DonationPayload()
	if err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}

	s.broadcast(ctx, evt, DonationPayload{
		ID:           p.DonationID,
		Amount:       p.Amount,
		TreesPlanted: p.TreesPlanted,
		TierID:       p.TierID,
		DonorName:    p.DonorName,
	})
	return nil
}

func (s *Subscriber) broadcast(ctx context.Context, evt event.Event, payload interface{}) {
	s.hub.BroadcastAt(string(evt.Type), payload, evt.OccurredAt)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
}
