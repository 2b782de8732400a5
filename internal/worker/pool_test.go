package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenlegacy-ng/greenlegacy/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	panics   bool
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.panics {
		panic("boom")
	}
	return j.err
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("failed")}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, panics: true}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 4 }, time.Second, 5*time.Millisecond,
		"failing and panicking jobs must not stop the workers")

	pool.Stop()
	pool.Stop()
	checker.Check(0)
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1) // not started, so the queue never drains

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()

	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}
