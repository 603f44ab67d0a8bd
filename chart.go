package montecarlo

import (
	"fmt"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxBins caps histogram resolution.
const maxBins = 100

// ChartOptions controls chart rendering.
type ChartOptions struct {
	// LogScale plots the time axis logarithmically, which is usually the
	// only readable choice given the heavy tail.
	LogScale bool

	// MaxMinutes drops trials above the cutoff before plotting.
	// 0 means unbounded.
	MaxMinutes float64

	// OutDir receives the PNG files. Empty means current directory.
	OutDir string
}

// RenderCharts writes two PNGs for a batch: a binned histogram of the
// duration distribution and a cumulative trial-count-vs-time curve. The
// cumulative curve plots its own sorted copy; the batch order is preserved.
//
// Filenames encode the Config that produced them, so an output artifact can
// always be traced back to its parameters. Returns the two file paths.
func RenderCharts(batch Batch, cfg Config, opts ChartOptions) (histPath, cumPath string, err error) {
	if len(batch) == 0 {
		return "", "", fmt.Errorf("%w: cannot chart an empty batch", ErrInvalidInput)
	}

	vals := make([]float64, 0, len(batch))
	for _, d := range batch {
		if opts.MaxMinutes > 0 && d > opts.MaxMinutes {
			continue
		}
		vals = append(vals, d)
	}
	if len(vals) == 0 {
		return "", "", fmt.Errorf("%w: cutoff of %g minutes excluded every trial", ErrInvalidInput, opts.MaxMinutes)
	}

	histPath = filepath.Join(opts.OutDir, chartName("distribution", cfg, opts.LogScale))
	cumPath = filepath.Join(opts.OutDir, chartName("cumulative", cfg, opts.LogScale))

	if err := renderHistogram(vals, histPath, opts.LogScale); err != nil {
		return "", "", err
	}
	if err := renderCumulative(vals, cumPath, opts.LogScale); err != nil {
		return "", "", err
	}
	return histPath, cumPath, nil
}

func renderHistogram(vals []float64, path string, logScale bool) error {
	p := plot.New()
	p.Title.Text = "Time to complete task"
	p.X.Label.Text = "Minutes"
	p.Y.Label.Text = "Trials"

	bins := maxBins
	if len(vals) < bins {
		bins = len(vals)
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(h)

	if logScale {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}

func renderCumulative(vals []float64, path string, logScale bool) error {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	pts := make(plotter.XYs, len(sorted))
	for i, d := range sorted {
		pts[i].X = d
		pts[i].Y = float64(i + 1)
	}

	p := plot.New()
	p.Title.Text = "Trials completed by time"
	p.X.Label.Text = "Minutes"
	p.Y.Label.Text = "Trials completed"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build cumulative curve: %w", err)
	}
	p.Add(line)

	if logScale {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save cumulative curve: %w", err)
	}
	return nil
}

// chartName encodes the parameters that shaped the distribution into the
// artifact's filename.
func chartName(kind string, cfg Config, logScale bool) string {
	scale := "linear"
	if logScale {
		scale = "log"
	}
	return fmt.Sprintf("%s_r%.2f_w%.0f_mu%.2f_sg%.2f_ri%.2f_rp%.2f_%s.png",
		kind, cfg.ReadinessMean, cfg.WaitTimeMean,
		cfg.RetryLogMean, cfg.RetryLogStd,
		cfg.RetryImpact, cfg.RetryPower, scale)
}
