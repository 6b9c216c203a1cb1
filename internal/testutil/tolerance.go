package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample value is NaN or Inf.
func RequireFinite(t testing.TB, s core.Series) {
	t.Helper()
	for i, p := range s {
		if !core.IsFinite(p.Value) {
			t.Fatalf("index %d (t=%v): non-finite value %v", i, p.Time, p.Value)
		}
	}
}

// RequireTimes fails t if the series instants differ from times.
func RequireTimes(t testing.TB, s core.Series, times []float64) {
	t.Helper()
	if len(s) != len(times) {
		t.Fatalf("length mismatch: got %d samples, want %d", len(s), len(times))
	}
	for i, p := range s {
		if p.Time != times[i] {
			t.Fatalf("index %d: time %v, want %v", i, p.Time, times[i])
		}
	}
}

// RequireWithin fails t if any sample value lies outside [lo, hi].
func RequireWithin(t testing.TB, s core.Series, lo, hi float64) {
	t.Helper()
	for i, p := range s {
		if p.Value < lo || p.Value > hi {
			t.Fatalf("index %d (t=%v): value %v outside [%v, %v]", i, p.Time, p.Value, lo, hi)
		}
	}
}
