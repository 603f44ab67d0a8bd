package montecarlo

import "testing"

// Test helpers for distribution properties. Stochastic output can't be
// asserted value-for-value, so tests pin down the properties that must hold
// for every seed: positivity, percentile ordering, tolerance bands.

// AssertAllPositive verifies every trial duration is strictly positive.
// The wait floor and readiness ceiling guarantee this for any valid Config.
func AssertAllPositive(t *testing.T, batch Batch) {
	t.Helper()
	for i, d := range batch {
		if d <= 0 {
			t.Fatalf("trial %d is not strictly positive: %g", i, d)
		}
	}
}

// AssertPercentileOrder verifies min ≤ median ≤ p90 ≤ p95 ≤ max.
func AssertPercentileOrder(t *testing.T, sum Summary) {
	t.Helper()
	if sum.Min > sum.Median {
		t.Errorf("min %.2f > median %.2f", sum.Min, sum.Median)
	}
	if sum.Median > sum.P90 {
		t.Errorf("median %.2f > p90 %.2f", sum.Median, sum.P90)
	}
	if sum.P90 > sum.P95 {
		t.Errorf("p90 %.2f > p95 %.2f", sum.P90, sum.P95)
	}
	if sum.P95 > sum.Max {
		t.Errorf("p95 %.2f > max %.2f", sum.P95, sum.Max)
	}
}

// AssertWithinBand verifies got falls inside [lo, hi]. Bands are wide on
// purpose: they must hold across seeds, not just the one in the test.
func AssertWithinBand(t *testing.T, name string, got, lo, hi float64) {
	t.Helper()
	if got < lo || got > hi {
		t.Errorf("%s = %.2f outside tolerance band [%.2f, %.2f]", name, got, lo, hi)
	}
}
