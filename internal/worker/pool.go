// Package worker runs background jobs on a fixed set of goroutines.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stopOnce sync.Once
}

// NewPool creates a new worker pool. Jobs get DefaultJobTimeout each.
func NewPool(workers int, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    max(workers, 1),
		jobTimeout: DefaultJobTimeout,
		jobQueue:   make(chan Job, queueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

// run executes one job; a job error or panic is logged and never kills the worker
func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", fmt.Sprintf("%T", job), "panic", r)
		}
	}()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", fmt.Sprintf("%T", job), "error", err)
	}
}

// Enqueue adds a job without blocking. It returns false if the queue is
// full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgJobDropped, "job", fmt.Sprintf("%T", job))
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}
