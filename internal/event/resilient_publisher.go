package event

import (
	"context"
	"sync"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// ResilientPublisher wraps a Bus and retries failed publishes in the background
// with exponential backoff, so a flaky subscriber never fails the caller's request.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration

	// mu orders wg.Add against Shutdown's Wait
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
	stop    chan struct{}
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration) *ResilientPublisher {
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		stop:       make(chan struct{}),
	}
}

// Publish attempts delivery once and schedules retries on failure.
// It always returns nil once the event has been accepted.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "error", err)
		return nil
	}
	p.wg.Add(1)
	p.mu.Unlock()

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	go p.retryLoop(event)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()

	// The request context may already be cancelled
	ctx := context.Background()

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, attempt))
		select {
		case <-p.stop:
			timer.Stop()
			logger.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "attempt", attempt)
			return
		case <-timer.C:
		}

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", p.maxRetries)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown cancels pending retries and waits for retry goroutines to exit
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.stop)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
