package montecarlo

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration reports a Config field violating its stated bounds.
// Detected at Sampler construction, before any randomness is consumed.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInvalidInput reports a bad call-site argument: a non-positive batch size
// or statistics requested over an empty batch.
var ErrInvalidInput = errors.New("invalid input")

// Config holds the nine model parameters. Fields are fixed for the lifetime
// of a Sampler; construct a new Sampler to change them.
type Config struct {
	// RetryLogMean (μ) and RetryLogStd (σ) parameterize the log-normal
	// retry count. exp(μ) is the median number of retries.
	RetryLogMean float64 `env:"MC_RETRY_LOG_MEAN"`
	RetryLogStd  float64 `env:"MC_RETRY_LOG_STD"`

	// ReadinessMean and ReadinessStd parameterize the per-attempt success
	// fraction. The drawn value is clamped to [0.5, 1.0].
	ReadinessMean float64 `env:"MC_READINESS_MEAN"`
	ReadinessStd  float64 `env:"MC_READINESS_STD"`

	// WaitTimeMean and WaitTimeStd parameterize the per-attempt wait in
	// seconds. The drawn value is floored at 1.
	WaitTimeMean float64 `env:"MC_WAIT_TIME_MEAN"`
	WaitTimeStd  float64 `env:"MC_WAIT_TIME_STD"`

	// RetryImpact (α) and RetryPower (p) shape the compounding slowdown
	// factor (1 + α·N_r^p).
	RetryImpact float64 `env:"MC_RETRY_IMPACT"`
	RetryPower  float64 `env:"MC_RETRY_POWER"`

	// LinesOfCode is the task size. Must be positive.
	LinesOfCode int `env:"MC_LINES_OF_CODE"`
}

// DefaultConfig returns the calibrated baseline model.
func DefaultConfig() Config {
	return Config{
		RetryLogMean:  0.9,
		RetryLogStd:   0.5,
		ReadinessMean: 0.8,
		ReadinessStd:  0.05,
		WaitTimeMean:  20,
		WaitTimeStd:   3,
		RetryImpact:   0.05,
		RetryPower:    1.0,
		LinesOfCode:   100,
	}
}

// Validate checks field bounds and names the first offender.
func (c Config) Validate() error {
	if c.LinesOfCode <= 0 {
		return fmt.Errorf("%w: LinesOfCode must be > 0, got %d", ErrInvalidConfiguration, c.LinesOfCode)
	}
	if c.RetryLogStd < 0 {
		return fmt.Errorf("%w: RetryLogStd must be >= 0, got %g", ErrInvalidConfiguration, c.RetryLogStd)
	}
	if c.ReadinessStd < 0 {
		return fmt.Errorf("%w: ReadinessStd must be >= 0, got %g", ErrInvalidConfiguration, c.ReadinessStd)
	}
	if c.WaitTimeStd < 0 {
		return fmt.Errorf("%w: WaitTimeStd must be >= 0, got %g", ErrInvalidConfiguration, c.WaitTimeStd)
	}
	return nil
}
