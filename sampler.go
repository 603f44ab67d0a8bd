package montecarlo

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Readiness clamp bounds and the wait-time floor are model constants, not
// Config fields: there is a floor on how poorly and a ceiling on how well the
// agent can perform, regardless of the drawn value.
const (
	readinessFloor = 0.5
	readinessCeil  = 1.0
	waitFloor      = 1.0
)

// Batch is an ordered sequence of trial durations in minutes. Owned by the
// caller once returned; the engine never mutates it afterwards.
type Batch []float64

// Sampler draws independent trial durations from a fixed Config. Each
// Sampler owns its random generator; it never touches a process-global
// source, so identical Config, seed and batch size reproduce identical
// batches.
//
// A Sampler is not safe for concurrent use of Trial/Batch (the generator is
// shared state); BatchParallel is safe because each worker derives its own
// generator.
type Sampler struct {
	cfg  Config
	seed uint64
	rng  *rand.Rand
}

// NewSampler validates cfg and returns a Sampler seeded with seed.
// Validation happens before any randomness is consumed.
func NewSampler(cfg Config, seed uint64) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns the model parameters this Sampler was built with.
func (s *Sampler) Config() Config { return s.cfg }

// Trial draws one simulated duration in minutes.
func (s *Sampler) Trial() float64 {
	return trial(s.cfg, s.rng)
}

// Batch draws n independent trials in sequence.
func (s *Sampler) Batch(n int) (Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: batch size must be > 0, got %d", ErrInvalidInput, n)
	}
	b := make(Batch, n)
	for i := range b {
		b[i] = trial(s.cfg, s.rng)
	}
	return b, nil
}

// BatchParallel draws n independent trials across workers goroutines.
//
// Trials share no state, so parallel generation is semantics-preserving.
// Worker i fills a contiguous segment using a generator derived from the
// Sampler's seed, so the result is reproducible for a fixed seed and worker
// count (but differs from the sequential Batch stream). The Sampler's own
// generator is left untouched.
func (s *Sampler) BatchParallel(n, workers int) (Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: batch size must be > 0, got %d", ErrInvalidInput, n)
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	b := make(Batch, n)
	per := n / workers
	rem := n % workers

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < workers; i++ {
		count := per
		if i == workers-1 {
			count += rem
		}
		wg.Add(1)
		go func(worker, lo, hi int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed(s.seed, worker)))
			for j := lo; j < hi; j++ {
				b[j] = trial(s.cfg, rng)
			}
		}(i, start, start+count)
		start += count
	}
	wg.Wait()
	return b, nil
}

// trial combines three independent latent draws into one duration:
//
//	duration = W · N_r · (1 + α·N_r^p) · (LOC / (R·60))
//
// Each latent variable uses its own Box-Muller pair; draws are never shared.
func trial(cfg Config, rng *rand.Rand) float64 {
	// Retry count: log-normal, unclamped. Source of the heavy right tail.
	retries := math.Exp(normal(rng, cfg.RetryLogMean, cfg.RetryLogStd))

	// Wait per attempt, seconds, floored.
	wait := normal(rng, cfg.WaitTimeMean, cfg.WaitTimeStd)
	if wait < waitFloor {
		wait = waitFloor
	}

	// Success fraction per attempt, clamped.
	readiness := normal(rng, cfg.ReadinessMean, cfg.ReadinessStd)
	if readiness < readinessFloor {
		readiness = readinessFloor
	}
	if readiness > readinessCeil {
		readiness = readinessCeil
	}

	slowdown := 1 + cfg.RetryImpact*math.Pow(retries, cfg.RetryPower)
	perRetry := float64(cfg.LinesOfCode) / (readiness * 60)

	return wait * retries * slowdown * perRetry
}

// normal draws Normal(mean, std) via the Box-Muller transform from a fresh
// pair of uniforms. u1 is taken from (0,1] so the log stays finite.
func normal(rng *rand.Rand, mean, std float64) float64 {
	u1 := 1 - rng.Float64()
	u2 := rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + std*z
}

// workerSeed derives an independent stream seed per worker (splitmix
// increment, same constant as a Weyl sequence step).
func workerSeed(seed uint64, worker int) uint64 {
	return seed + uint64(worker+1)*0x9e3779b97f4a7c15
}

// TimeSeed returns a wall-clock seed for non-reproducible runs.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// CryptoSeed returns a seed drawn from crypto/rand.
func CryptoSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
