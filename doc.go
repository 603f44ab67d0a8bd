// Package montecarlo estimates how long an automated coding agent needs to
// produce a fixed amount of code, by Monte Carlo simulation.
//
// # Overview
//
// The engine draws many independent trials from a parametric stochastic model
// and summarizes the resulting empirical duration distribution. Two
// components, simple dependency order:
//
//   - Sampler    - draws i.i.d. trial durations from the model
//   - Summarize  - computes summary statistics over a batch of trials
//
// Presentation (text report, histogram and cumulative charts) consumes the
// engine's output and lives downstream of it.
//
// # The model
//
// Each trial combines three independent latent variables:
//
//	N_r ~ LogNormal(μ, σ)                  retry count (heavy right tail, no clamp)
//	W   ~ Normal(W̄, σ_W), W ≥ 1            per-attempt wait, seconds
//	R   ~ Normal(R̄, σ_R), R ∈ [0.5, 1.0]   per-attempt success fraction
//
// into a single duration in minutes:
//
//	duration = W · N_r · (1 + α·N_r^p) · (LOC / (R·60))
//
// Where:
//   - W·N_r: total wait across retries
//   - (1 + α·N_r^p): compounding slowdown as retries accumulate
//     (p controls whether the growth is linear or superlinear)
//   - LOC/(R·60): task size and success rate as effective minutes per retry
//
// All normal variates come from the Box-Muller transform with a fresh pair of
// uniforms per draw; the three latent variables never share variates.
//
// # Quick start
//
//	cfg := montecarlo.DefaultConfig()
//	cfg.LinesOfCode = 250
//
//	s, err := montecarlo.NewSampler(cfg, montecarlo.TimeSeed())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch, err := s.Batch(10000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := montecarlo.Summarize(batch)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Median: %.0f min\n", sum.Median)
//	fmt.Printf("P95:    %.0f min\n", sum.P95)
//
// # Percentiles
//
// Summarize uses nearest-rank percentiles: sort a copy ascending, index at
// floor(N·p). No interpolation. This differs from interpolated conventions
// and matters for exact expectations at small N; see Percentile.
//
// # Reproducibility
//
// Each Sampler owns its random generator, seeded at construction. Identical
// Config, seed and batch size reproduce identical batches. The engine never
// touches a process-global random source.
//
// # Heavy tails
//
// The log-normal retry count gives the distribution a heavy right tail on
// purpose. Extreme durations are valid output, not errors; nothing clamps or
// suppresses outliers. TailDivergence quantifies how far the tail has pulled
// away from the median: when P95 is many multiples of P50, the mean stops
// being a useful planning number and the percentiles are what to read.
package montecarlo
