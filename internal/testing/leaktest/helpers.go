// Package leaktest detects goroutines left running by a test
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines from earlier tests settle
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines outlived the body
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(time.Second)
	leaked := runtime.NumGoroutine() - g.before
	for leaked > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(20 * time.Millisecond)
		leaked = runtime.NumGoroutine() - g.before
	}

	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, g.before+leaked, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
