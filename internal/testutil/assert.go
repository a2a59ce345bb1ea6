package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// RequireFinite fails t at the first NaN or Inf in data.
func RequireFinite(t testing.TB, name string, data []float64) {
	t.Helper()

	if core.AllFinite(data) {
		return
	}

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s[%d]: non-finite value %v", name, i, v)
		}
	}
}

// RequireNearlyEqual fails t if got and want differ in length or any pair
// differs by more than eps. eps 0 demands bit-for-bit equal values.
func RequireNearlyEqual(t testing.TB, name string, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", name, len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps || (eps == 0 && got[i] != want[i]) {
			t.Fatalf("%s[%d] = %v, want %v (diff %v > eps %v)", name, i, got[i], want[i], diff, eps)
		}
	}
}
