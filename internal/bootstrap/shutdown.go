package bootstrap

import (
	"context"
	"log/slog"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/scheduler"
	"github.com/greenlegacy-ng/greenlegacy/internal/sse"
	"github.com/greenlegacy-ng/greenlegacy/internal/worker"
)

// stoppableServer is the part of server.Server shutdown needs
type stoppableServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             stoppableServer
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Storage            *Storage
}

// GracefulShutdown stops the application in dependency order:
// 1. Activity stream hub (close long-lived client streams)
// 2. HTTP server (stop accepting new requests, drain in-flight ones)
// 3. Event publisher (flush pending retries)
// 4. Scheduler and worker pool (background jobs)
// 5. Storage (close the database pool)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Open streams would otherwise hold Shutdown until the deadline
	if components.SSEHub != nil {
		slog.Info(LogMsgStoppingActivityStream)
		components.SSEHub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Scheduler != nil || components.WorkerPool != nil {
		slog.Info(LogMsgStoppingBackgroundJobs)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
