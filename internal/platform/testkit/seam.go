package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Serial holds a process-wide lock until the test finishes. Tests that
// mutate package-level seams call this so they never overlap
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Swap replaces a package-level variable for the duration of the test,
// restoring the original on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	t.Cleanup(func() { *target = orig })
	*target = replacement
}
