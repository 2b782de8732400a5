package eventlog

import (
	"context"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// CleanupJob is a worker job that prunes the event log
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a new cleanup job. A non-positive retention uses DefaultRetention.
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &CleanupJob{
		service:   service,
		retention: retention,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, "retention", j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted_count", count, "duration", duration)
	return nil
}
