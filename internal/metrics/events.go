package metrics

import (
	"context"
	"strings"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

const noTier = "none"

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent, event.AllTypes...)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TreePlanted:
		p, err := evt.TreePayload()
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		TreesCreated.WithLabelValues(stateLabel(p.State)).Inc()

	case event.TreeUpdated:
		if adopted, _ := evt.GetMetadataValue(tree.MetadataKeyAdopted).(bool); adopted {
			TreesAdopted.Inc()
		}

	case event.TreeRemoved:
		p, err := evt.TreeRemovedPayload()
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		TreesRemoved.WithLabelValues(stateLabel(p.State)).Inc()

	case event.DonationCreated:
		p, err := evt.DonationPayload()
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		tier := p.TierID
		if tier == "" {
			tier = noTier
		}
		DonationsCreated.WithLabelValues(tier).Inc()
		DonationAmount.Add(float64(p.Amount))
		TreesFunded.Add(float64(p.TreesPlanted))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) decodeFailed(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	return nil
}

// stateLabel folds case so "lagos" and "Lagos" share a series
func stateLabel(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}
