package testutil

import (
	"testing"

	"github.com/cwbudde/algo-q15/q15"
)

// RequireSamplesEqual fails t if got and want differ in length or at any
// index. Q15 outputs are compared bit-exactly, never with a tolerance.
func RequireSamplesEqual(t *testing.T, got, want []q15.Sample) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// CountSaturated returns how many samples sit exactly on a Q15 range limit.
// Fixture tests use it to confirm a stimulus actually exercises clamping.
func CountSaturated(data []q15.Sample) int {
	n := 0
	for _, v := range data {
		if v == q15.MinSample || v == q15.MaxSample {
			n++
		}
	}
	return n
}
