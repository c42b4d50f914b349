package testkit

import (
	"sync"
	"testing"
)

// Swap sets *target to v for the rest of the test; the old value comes back on cleanup.
// Tests that swap package variables should also call Serial
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	old := *target
	t.Cleanup(func() { *target = old })
	*target = v
}

var serial sync.Mutex

// Serial holds one process-wide lock until the test ends
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
