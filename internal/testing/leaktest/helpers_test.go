package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestGoroutineChecker_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go time.Sleep(100 * time.Millisecond)

	checker.Check(0)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(1 * time.Millisecond)
		}()
		wg.Wait()
	})
}
