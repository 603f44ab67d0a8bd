package montecarlo

import (
	"errors"
	"math"
	"testing"
)

func TestTailDivergenceHeavy(t *testing.T) {
	sum := Summary{Median: 100, P95: 300}

	tail, err := TailDivergence(sum)
	if err != nil {
		t.Fatalf("TailDivergence failed: %v", err)
	}

	if tail.DivergenceRatio != 3 {
		t.Errorf("ratio = %g, want 3", tail.DivergenceRatio)
	}
	if !tail.HeavyTailed {
		t.Error("ratio 3 should count as heavy-tailed")
	}

	// α = ln(10)/ln(3) ≈ 2.096
	want := math.Log(10) / math.Log(3)
	if math.Abs(tail.ParetoIndex-want) > 1e-12 {
		t.Errorf("Pareto index = %g, want %g", tail.ParetoIndex, want)
	}
}

func TestTailDivergenceTight(t *testing.T) {
	sum := Summary{Median: 100, P95: 150}

	tail, err := TailDivergence(sum)
	if err != nil {
		t.Fatalf("TailDivergence failed: %v", err)
	}

	if tail.HeavyTailed {
		t.Error("ratio 1.5 should not count as heavy-tailed")
	}
}

func TestTailDivergenceRejectsNonPositiveMedian(t *testing.T) {
	if _, err := TailDivergence(Summary{Median: 0, P95: 10}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

// The baseline model's tail should register as heavy: the log-normal retry
// count pushes P95 well past double the median.
func TestModelTailIsHeavy(t *testing.T) {
	s, err := NewSampler(DefaultConfig(), 31)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}
	batch, _ := s.Batch(10000)
	sum, _ := Summarize(batch)

	tail, err := TailDivergence(sum)
	if err != nil {
		t.Fatalf("TailDivergence failed: %v", err)
	}

	AssertWithinBand(t, "P95/P50", tail.DivergenceRatio, 1.5, 10)
	if !tail.HeavyTailed {
		t.Errorf("baseline model should be heavy-tailed, ratio %.2f", tail.DivergenceRatio)
	}

	t.Logf("✓ Baseline tail: P95/P50 %.2f, Pareto index %.2f",
		tail.DivergenceRatio, tail.ParetoIndex)
}
