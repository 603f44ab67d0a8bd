// Command monte-carlo-ai-coding estimates how long an AI coding agent needs
// for a task of a given size, by simulating many trials of a parametric
// retry/wait/readiness model and reporting the duration distribution.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	montecarlo "github.com/OperationalFallacy/monte-carlo-ai-coding"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := run(); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, then MC_* environment variables, then flags.
	cfg := montecarlo.DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	flag.Float64Var(&cfg.RetryLogMean, "mu", cfg.RetryLogMean, "Log-mean of the retry count distribution")
	flag.Float64Var(&cfg.RetryLogStd, "sigma", cfg.RetryLogStd, "Log-std of the retry count distribution")
	flag.Float64Var(&cfg.ReadinessMean, "readiness", cfg.ReadinessMean, "Mean per-attempt success fraction (clamped to [0.5, 1.0])")
	flag.Float64Var(&cfg.ReadinessStd, "readiness-std", cfg.ReadinessStd, "Std of the success fraction")
	flag.Float64Var(&cfg.WaitTimeMean, "wait", cfg.WaitTimeMean, "Mean per-attempt wait in seconds (floored at 1)")
	flag.Float64Var(&cfg.WaitTimeStd, "wait-std", cfg.WaitTimeStd, "Std of the per-attempt wait")
	flag.Float64Var(&cfg.RetryImpact, "retry-impact", cfg.RetryImpact, "Compounding slowdown coefficient α")
	flag.Float64Var(&cfg.RetryPower, "retry-power", cfg.RetryPower, "Compounding slowdown exponent p")
	flag.IntVar(&cfg.LinesOfCode, "loc", cfg.LinesOfCode, "Task size in lines of code")

	var (
		trials     = flag.Int("trials", 10000, "Number of simulated trials")
		seed       = flag.Uint64("seed", 0, "Random seed (0 draws a fresh one; repeat a printed seed to reproduce a run)")
		workers    = flag.Int("workers", 1, "Goroutines for batch generation")
		charts     = flag.Bool("charts", true, "Write histogram and cumulative PNGs")
		logScale   = flag.Bool("log-scale", true, "Plot the time axis logarithmically")
		maxMinutes = flag.Float64("max-minutes", 0, "Drop trials above this many minutes from charts (0 = unbounded)")
		outDir     = flag.String("out", ".", "Directory for chart files")
	)
	flag.Parse()

	if *seed == 0 {
		s, err := montecarlo.CryptoSeed()
		if err != nil {
			return err
		}
		*seed = s
	}

	sampler, err := montecarlo.NewSampler(cfg, *seed)
	if err != nil {
		return err
	}

	slog.Info("sampling", "trials", *trials, "loc", cfg.LinesOfCode, "seed", *seed, "workers", *workers)

	var batch montecarlo.Batch
	if *workers > 1 {
		batch, err = sampler.BatchParallel(*trials, *workers)
	} else {
		batch, err = sampler.Batch(*trials)
	}
	if err != nil {
		return err
	}

	sum, err := montecarlo.Summarize(batch)
	if err != nil {
		return err
	}
	tail, err := montecarlo.TailDivergence(sum)
	if err != nil {
		return err
	}

	fmt.Print(montecarlo.Report(cfg, sum, tail, *trials))

	if *charts {
		hist, cum, err := montecarlo.RenderCharts(batch, cfg, montecarlo.ChartOptions{
			LogScale:   *logScale,
			MaxMinutes: *maxMinutes,
			OutDir:     *outDir,
		})
		if err != nil {
			return err
		}
		slog.Info("charts written", "histogram", hist, "cumulative", cum)
	}

	return nil
}
