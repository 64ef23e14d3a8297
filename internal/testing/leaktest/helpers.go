// Package leaktest checks that background goroutines started by a test
// have exited by the time it ends.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares it
// against the count when Check runs.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines are still running
// once the count stops dropping or settleTimeout passes.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	after := waitFor(target, settleTimeout)
	if after > target {
		g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
	}
}

// VerifyNone registers a cleanup that fails the test when goroutines
// started during it are still alive at the end.
func VerifyNone(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(0) })
}

// waitFor polls until at most target goroutines remain and returns the
// last observed count.
func waitFor(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	n := runtime.NumGoroutine()
	for n > target && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		n = runtime.NumGoroutine()
	}
	return n
}
