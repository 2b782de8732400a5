package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second
