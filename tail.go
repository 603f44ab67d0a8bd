package montecarlo

import (
	"fmt"
	"math"
)

// TailStats quantifies how heavy the right tail of a duration batch is.
//
// The log-normal retry count makes the model's tail heavy by design. When
// the tail dominates, the mean is pulled far above the median and stops
// being a useful planning number; the divergence ratio makes that visible.
type TailStats struct {
	// DivergenceRatio is P95/P50.
	//
	// Interpretation:
	//   - Ratio < 2:  tight distribution, mean and median agree
	//   - Ratio 2-5:  moderate skew, plan with P90/P95
	//   - Ratio > 5:  tail dominates, the mean is a lie
	DivergenceRatio float64

	// ParetoIndex is the tail exponent α implied by treating the upper
	// tail as Pareto. α ≤ 2 means infinite variance (extreme tail).
	ParetoIndex float64

	// HeavyTailed is true when DivergenceRatio exceeds 2.
	HeavyTailed bool
}

// TailDivergence derives TailStats from a batch's Summary.
//
// The Pareto index comes from the quantile ratio: for a Pareto tail
// P(X > x) = (x/x_min)^(-α), quantiles satisfy x_q = x_min·(1-q)^(-1/α),
// so P95/P50 = (0.05/0.50)^(-1/α) and α = ln(10) / ln(P95/P50).
func TailDivergence(sum Summary) (TailStats, error) {
	if sum.Median <= 0 {
		return TailStats{}, fmt.Errorf("%w: tail divergence needs a positive median, got %g", ErrInvalidInput, sum.Median)
	}

	ratio := sum.P95 / sum.Median

	var alpha float64
	if ratio > 1 {
		alpha = math.Log(10) / math.Log(ratio)
	}

	return TailStats{
		DivergenceRatio: ratio,
		ParetoIndex:     alpha,
		HeavyTailed:     ratio > 2,
	}, nil
}
