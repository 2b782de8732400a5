package bootstrap

import (
	"log/slog"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/eventlog"
	"github.com/greenlegacy-ng/greenlegacy/internal/metrics"
	"github.com/greenlegacy-ng/greenlegacy/internal/sse"
	"github.com/greenlegacy-ng/greenlegacy/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	StatsService stats.Service
	SSEHub       *sse.Hub

	// EventLogService is optional; nil skips the audit trail
	EventLogService eventlog.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// - Stats handler (activity feed, live stats cache invalidation)
// - Metrics collector (domain counters)
// - SSE subscriber (activity stream for browsers)
// - Event log (audit trail of every domain event)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	slog.Info(LogMsgStatsHandlerRegistered)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	if deps.EventLogService != nil {
		deps.EventLogService.Subscribe(deps.EventBus)
		slog.Info(LogMsgEventLogRegistered)
	}
}
