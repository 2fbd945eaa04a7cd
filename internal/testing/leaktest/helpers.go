package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleDelay gives exiting goroutines time to be reaped before counting
const settleDelay = 50 * time.Millisecond

// GoroutineChecker records the goroutine count so a test can assert that
// background loops it started have exited
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines are still running
// compared with when the checker was created
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(10 * settleDelay)
	for {
		settle()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
				g.before, g.before+leaked, leaked, tolerance)
			return
		}
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func settle() {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(settleDelay)
}
