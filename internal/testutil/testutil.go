// Package testutil provides shared assertion helpers for seqkit tests.
package testutil

import (
	"testing"

	"github.com/go-test/deep"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertDeepEqual fails the test if got and want differ structurally,
// reporting the differing paths.
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("unexpected difference: %v", diff)
	}
}

// AssertPanics fails the test unless fn panics. The recovered value is
// returned for further inspection.
func AssertPanics(t *testing.T, fn func()) (recovered interface{}) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
	return nil
}
