package montecarlo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is a read-only statistical snapshot of a Batch, all values in
// minutes. Recomputed on request, never cached.
type Summary struct {
	Mean   float64
	Median float64
	P90    float64
	P95    float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary over one ascending sort of a copy of the
// batch; the caller's ordering is preserved.
func Summarize(batch Batch) (Summary, error) {
	if len(batch) == 0 {
		return Summary{}, fmt.Errorf("%w: cannot summarize an empty batch", ErrInvalidInput)
	}

	sorted := make([]float64, len(batch))
	copy(sorted, batch)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(sorted, nil),
		Median: Percentile(sorted, 0.50),
		P90:    Percentile(sorted, 0.90),
		P95:    Percentile(sorted, 0.95),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}, nil
}

// Percentile returns the nearest-rank p-th percentile of an ascending-sorted
// slice: the element at index floor(N·p), clamped to the last element.
//
// No interpolation. For even N this picks one element rather than averaging
// the two middle ones, so Percentile(sorted, 0.50) can differ from a
// textbook median by one rank. Downstream calibration depends on this exact
// index rule; do not swap in an interpolated definition.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
