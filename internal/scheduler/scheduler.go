// Package scheduler enqueues recurring jobs on a worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/worker"
)

// Enqueuer accepts jobs without blocking; worker.Pool satisfies it
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// pool's queue full is skipped rather than blocking the next one.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Debug(LogMsgJobScheduled, "job", name, "interval", interval)
		for {
			select {
			case <-ticker.C:
				if !s.pool.Enqueue(job) {
					logger.Warn(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
