package bootstrap

import (
	"log/slog"

	"github.com/greenlegacy-ng/greenlegacy/internal/config"
	"github.com/greenlegacy-ng/greenlegacy/internal/eventlog"
	"github.com/greenlegacy-ng/greenlegacy/internal/scheduler"
	"github.com/greenlegacy-ng/greenlegacy/internal/worker"
)

// InitializeBackgroundJobs starts the worker pool and schedules event log
// retention cleanup. Both must be passed to GracefulShutdown.
// A non-positive interval falls back to eventlog.DefaultCleanupInterval.
func InitializeBackgroundJobs(cfg *config.Config, eventLog eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	interval := cfg.EventLogCleanupInterval
	if interval <= 0 {
		interval = eventlog.DefaultCleanupInterval
	}

	pool := worker.NewPool(WorkerPoolSize, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(JobNameEventLogCleanup, interval,
		eventlog.NewCleanupJob(eventLog, cfg.EventLogRetention))

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", WorkerPoolSize,
		"cleanup_interval", interval,
		"retention", cfg.EventLogRetention)
	return pool, sched
}
