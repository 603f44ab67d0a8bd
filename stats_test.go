package montecarlo

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeKnownBatch(t *testing.T) {
	batch := Batch{4, 1, 3, 2}

	sum, err := Summarize(batch)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	// Sorted: [1 2 3 4]. Nearest-rank indexes: floor(4·0.5)=2,
	// floor(4·0.9)=3, floor(4·0.95)=3.
	if sum.Mean != 2.5 {
		t.Errorf("Mean = %g, want 2.5", sum.Mean)
	}
	if sum.Median != 3 {
		t.Errorf("Median = %g, want 3 (nearest-rank picks index 2, not the interpolated 2.5)", sum.Median)
	}
	if sum.P90 != 4 {
		t.Errorf("P90 = %g, want 4", sum.P90)
	}
	if sum.P95 != 4 {
		t.Errorf("P95 = %g, want 4", sum.P95)
	}
	if sum.Min != 1 || sum.Max != 4 {
		t.Errorf("Min/Max = %g/%g, want 1/4", sum.Min, sum.Max)
	}
}

func TestPercentileNearestRank(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	cases := []struct {
		p    float64
		want float64
	}{
		{0.50, 6},  // floor(10·0.50) = 5
		{0.90, 10}, // floor(10·0.90) = 9
		{0.95, 10}, // floor(10·0.95) = 9
		{0.0, 1},
		{1.0, 10}, // index clamps to the last element
	}
	for _, c := range cases {
		if got := Percentile(sorted, c.p); got != c.want {
			t.Errorf("Percentile(p=%.2f) = %g, want %g", c.p, got, c.want)
		}
	}

	if got := Percentile([]float64{7}, 0.95); got != 7 {
		t.Errorf("singleton percentile = %g, want 7", got)
	}
	if got := Percentile(nil, 0.5); got != 0 {
		t.Errorf("empty percentile = %g, want 0", got)
	}
}

func TestSummarizeEmptyBatch(t *testing.T) {
	_, err := Summarize(Batch{})
	if err == nil {
		t.Fatal("Summarize(empty) should fail, not return garbage")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSummarizePreservesBatchOrder(t *testing.T) {
	batch := Batch{9, 1, 5, 3, 7}
	original := make(Batch, len(batch))
	copy(original, batch)

	if _, err := Summarize(batch); err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	for i := range batch {
		if batch[i] != original[i] {
			t.Fatalf("batch mutated at index %d: %g != %g (cumulative rendering needs the caller's order)", i, batch[i], original[i])
		}
	}
}

func TestPercentileOrderOnSampledBatch(t *testing.T) {
	s, err := NewSampler(DefaultConfig(), 7)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}
	batch, err := s.Batch(5000)
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	sum, err := Summarize(batch)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	AssertPercentileOrder(t, sum)

	if sum.Min <= 0 {
		t.Errorf("Min = %g, durations must stay strictly positive", sum.Min)
	}

	t.Logf("✓ Percentile order over %d trials:", len(batch))
	t.Logf("  Min: %.1f  Median: %.1f  P90: %.1f  P95: %.1f  Max: %.1f",
		sum.Min, sum.Median, sum.P90, sum.P95, sum.Max)
}

func TestSummarizeMeanMatchesManualSum(t *testing.T) {
	batch := Batch{10, 20, 30, 40, 50, 60}

	sum, err := Summarize(batch)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	var total float64
	for _, d := range batch {
		total += d
	}
	want := total / float64(len(batch))

	if math.Abs(sum.Mean-want) > 1e-12 {
		t.Errorf("Mean = %g, want %g", sum.Mean, want)
	}
}
