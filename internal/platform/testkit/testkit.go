// Package testkit holds small assertions and seam helpers shared by package tests
package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recovered runs fn and returns what it panicked with, or nil
func recovered(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

// MustPanic fails unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	if recovered(fn) == nil {
		t.Fatalf("expected panic, got none")
	}
}

// MustPanicWith fails unless fn panics with a value whose text contains want
func MustPanicWith(t testing.TB, want string, fn func()) {
	t.Helper()
	v := recovered(fn)
	if v == nil {
		t.Fatalf("expected panic containing %q, got none", want)
	}
	if got := fmt.Sprint(v); !strings.Contains(got, want) {
		t.Fatalf("panic %q does not contain %q", got, want)
	}
}

// MustNotPanic fails if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	if v := recovered(fn); v != nil {
		t.Fatalf("unexpected panic: %v", v)
	}
}

// MustContain fails when out lacks needle; out is saved to a temp file for inspection
func MustContain(t testing.TB, out, needle string) {
	t.Helper()
	if !strings.Contains(out, needle) {
		t.Fatalf("missing %q in output (saved to %s)", needle, save(t, out))
	}
}

// MustNotContain fails when out has needle
func MustNotContain(t testing.TB, out, needle string) {
	t.Helper()
	if strings.Contains(out, needle) {
		t.Fatalf("unexpected %q in output (saved to %s)", needle, save(t, out))
	}
}

// Lines returns the non-blank lines of s with trailing whitespace removed
func Lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimRight(l, " \t\r"); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func save(t testing.TB, s string) string {
	p := filepath.Join(t.TempDir(), "output.txt")
	if err := os.WriteFile(p, []byte(s), 0o600); err != nil {
		return "<unsaved: " + err.Error() + ">"
	}
	return p
}
