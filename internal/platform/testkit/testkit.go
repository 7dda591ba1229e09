// Package testkit holds the shared assertion and seam helpers for tests
package testkit

import (
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()

	panicked := true
	defer func() {
		if !panicked {
			t.Fatal("expected a panic")
		}
		_ = recover()
	}()

	fn()
	panicked = false
}

// MustContain asserts that got contains want
func MustContain(t *testing.T, got, want string) {
	t.Helper()

	if !strings.Contains(got, want) {
		t.Fatalf("missing %q in %q", want, got)
	}
}
