package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

// EventHandler turns tree and donation events into activity entries
// and keeps the live stats cache honest
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.TreePlanted, h.HandleTreePlanted)
	bus.Subscribe(event.TreeUpdated, h.HandleTreeUpdated)
	bus.Subscribe(event.TreeRemoved, h.HandleTreeRemoved)
	bus.Subscribe(event.DonationCreated, h.HandleDonationCreated)
}

// HandleTreePlanted records a "planted" activity entry
func (h *EventHandler) HandleTreePlanted(ctx context.Context, evt event.Event) error {
	payload, err := evt.TreePayload()
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		h.service.Invalidate()
		return fmt.Errorf("failed to decode tree planted payload: %w", err)
	}

	msg := fmt.Sprintf(MsgFmtPlanted, speciesShortName(payload.Species, payload.Name), payload.State)
	if payload.PlantedBy != "" {
		msg = fmt.Sprintf(MsgFmtPlantedBy, speciesShortName(payload.Species, payload.Name), payload.State, payload.PlantedBy)
	}
	h.service.RecordActivity(ctx, newActivity(domain.ActivityPlanted, msg, evt.OccurredAt))
	return nil
}

// HandleTreeUpdated records an "adopted" entry when the update named a donor for the first time
func (h *EventHandler) HandleTreeUpdated(ctx context.Context, evt event.Event) error {
	adopted, _ := evt.GetMetadataValue(tree.MetadataKeyAdopted).(bool)
	if !adopted {
		h.service.Invalidate()
		return nil
	}

	payload, err := evt.TreePayload()
	if err != nil {
		h.service.Invalidate()
		return fmt.Errorf("failed to decode tree updated payload: %w", err)
	}

	where := payload.City
	if where == "" {
		where = payload.State
	}
	msg := fmt.Sprintf(MsgFmtAdopted, payload.DonorName, speciesShortName(payload.Species, payload.Name), where)
	h.service.RecordActivity(ctx, newActivity(domain.ActivityAdopted, msg, evt.OccurredAt))
	return nil
}

// HandleTreeRemoved only invalidates; removals are not shown in the feed
func (h *EventHandler) HandleTreeRemoved(_ context.Context, _ event.Event) error {
	h.service.Invalidate()
	return nil
}

// HandleDonationCreated records a "donated" activity entry
func (h *EventHandler) HandleDonationCreated(ctx context.Context, evt event.Event) error {
	payload, err := evt.DonationPayload()
	if err != nil {
		h.service.Invalidate()
		return fmt.Errorf("failed to decode donation payload: %w", err)
	}

	donor := strings.TrimSpace(payload.DonorName)
	if donor == "" {
		donor = AnonymousDonorName
	}
	noun := "tree"
	if payload.TreesPlanted != 1 {
		noun = "trees"
	}
	msg := fmt.Sprintf(MsgFmtDonated, donor, donation.FormatNaira(payload.Amount), payload.TreesPlanted, noun)
	h.service.RecordActivity(ctx, newActivity(domain.ActivityDonated, msg, evt.OccurredAt))
	return nil
}

func newActivity(typ domain.ActivityType, msg string, at time.Time) domain.ActivityEvent {
	if at.IsZero() {
		at = time.Now()
	}
	return domain.ActivityEvent{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   msg,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

// speciesShortName turns "Iroko (Milicia excelsa)" into "Iroko"
func speciesShortName(species, fallback string) string {
	if i := strings.Index(species, " ("); i > 0 {
		return species[:i]
	}
	if species != "" {
		return species
	}
	return fallback
}
