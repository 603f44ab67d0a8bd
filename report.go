package montecarlo

import (
	"fmt"
	"math"
	"strings"
)

// Report formats the model parameters and the summary of an n-trial run as
// human-readable text. Statistics are rounded to whole minutes.
func Report(cfg Config, sum Summary, tail TailStats, n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Monte Carlo estimate: %d lines of code, %d trials\n\n", cfg.LinesOfCode, n)

	b.WriteString("Model parameters:\n")
	fmt.Fprintf(&b, "  Retry log-mean (μ):    %.2f (median retries ≈ %.1f)\n", cfg.RetryLogMean, math.Exp(cfg.RetryLogMean))
	fmt.Fprintf(&b, "  Retry log-std (σ):     %.2f\n", cfg.RetryLogStd)
	fmt.Fprintf(&b, "  Readiness:             %.2f ± %.2f (clamped to [%.1f, %.1f])\n", cfg.ReadinessMean, cfg.ReadinessStd, readinessFloor, readinessCeil)
	fmt.Fprintf(&b, "  Wait time (s):         %.1f ± %.1f (floor %.0f)\n", cfg.WaitTimeMean, cfg.WaitTimeStd, waitFloor)
	fmt.Fprintf(&b, "  Retry impact (α):      %.2f\n", cfg.RetryImpact)
	fmt.Fprintf(&b, "  Retry power (p):       %.2f\n", cfg.RetryPower)

	b.WriteString("\nDuration (minutes):\n")
	fmt.Fprintf(&b, "  Mean:    %4.0f\n", sum.Mean)
	fmt.Fprintf(&b, "  Median:  %4.0f\n", sum.Median)
	fmt.Fprintf(&b, "  P90:     %4.0f\n", sum.P90)
	fmt.Fprintf(&b, "  P95:     %4.0f\n", sum.P95)
	fmt.Fprintf(&b, "  Min:     %4.0f\n", sum.Min)
	fmt.Fprintf(&b, "  Max:     %4.0f\n", sum.Max)

	b.WriteString("\nTail:\n")
	fmt.Fprintf(&b, "  P95/P50:       %.2f\n", tail.DivergenceRatio)
	fmt.Fprintf(&b, "  Pareto index:  %.2f\n", tail.ParetoIndex)
	if tail.HeavyTailed {
		b.WriteString("  Heavy tail: plan with the percentiles, not the mean\n")
	} else {
		b.WriteString("  Tail under control: mean and median agree\n")
	}

	return b.String()
}
