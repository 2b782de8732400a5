package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version    string         `json:"version"` // Event schema version (e.g., "1.0")
	Type       Type           `json:"type"`
	Payload    interface{}    `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	TreePlanted     Type = "tree.planted"
	TreeUpdated     Type = "tree.updated"
	TreeRemoved     Type = "tree.removed"
	DonationCreated Type = "donation.created"
)

// AllTypes lists every event type the services publish
var AllTypes = []Type{TreePlanted, TreeUpdated, TreeRemoved, DonationCreated}

// Typed event payloads for type safety

// TreePayloadV1 is the typed payload for tree.planted and tree.updated
type TreePayloadV1 struct {
	TreeID    string            `json:"tree_id"`
	Name      string            `json:"name"`
	Species   string            `json:"species"`
	State     string            `json:"state"`
	City      string            `json:"city"`
	Status    domain.TreeStatus `json:"status"`
	PlantedBy string            `json:"planted_by,omitempty"`
	DonorName string            `json:"donor_name,omitempty"`
}

// TreeRemovedPayloadV1 is the typed payload for tree.removed
type TreeRemovedPayloadV1 struct {
	TreeID string `json:"tree_id"`
	Name   string `json:"name"`
	State  string `json:"state"`
}

// DonationCreatedPayloadV1 is the typed payload for donation.created
type DonationCreatedPayloadV1 struct {
	DonationID       string `json:"donation_id"`
	Amount           int64  `json:"amount"`
	TreesPlanted     int64  `json:"trees_planted"`
	TierID           string `json:"tier_id,omitempty"`
	DonorName        string `json:"donor_name,omitempty"`
	PaymentReference string `json:"payment_reference"`
}

// Type-safe event constructors

func treePayload(t domain.Tree) TreePayloadV1 {
	return TreePayloadV1{
		TreeID:    t.ID,
		Name:      t.Name,
		Species:   t.Species,
		State:     t.Location.State,
		City:      t.Location.City,
		Status:    t.Status,
		PlantedBy: t.PlantedBy,
		DonorName: t.DonorName,
	}
}

// NewTreePlantedEvent creates a tree.planted event
func NewTreePlantedEvent(t domain.Tree) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       TreePlanted,
		Payload:    treePayload(t),
		OccurredAt: time.Now().UTC(),
	}
}

// NewTreeUpdatedEvent creates a tree.updated event
func NewTreeUpdatedEvent(t domain.Tree) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       TreeUpdated,
		Payload:    treePayload(t),
		OccurredAt: time.Now().UTC(),
	}
}

// NewTreeRemovedEvent creates a tree.removed event
func NewTreeRemovedEvent(t domain.Tree) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TreeRemoved,
		Payload: TreeRemovedPayloadV1{
			TreeID: t.ID,
			Name:   t.Name,
			State:  t.Location.State,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewDonationCreatedEvent creates a donation.created event
func NewDonationCreatedEvent(d domain.Donation) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DonationCreated,
		Payload: DonationCreatedPayloadV1{
			DonationID:       d.ID,
			Amount:           d.Amount,
			TreesPlanted:     d.TreesPlanted,
			TierID:           d.TierID,
			DonorName:        d.DonorName,
			PaymentReference: d.PaymentReference,
		},
		OccurredAt: d.Timestamp,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// SubscribeAll registers handler for each of the given types
func SubscribeAll(bus Bus, handler Handler, types ...Type) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
