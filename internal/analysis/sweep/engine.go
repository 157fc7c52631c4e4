package sweep

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"misweep/domain/core"
	"misweep/domain/histogram"

	"golang.org/x/sync/semaphore"
)

// Config carries the full parameterization of a lag sweep: the lag grid,
// the histogram shape and axis ranges, and the execution knobs.
type Config struct {
	ShiftFrom int
	ShiftTo   int
	ShiftStep int

	BinsX int
	BinsY int
	MinX  float64
	MaxX  float64
	MinY  float64
	MaxY  float64

	// MaxWorkers bounds the number of concurrently running lag tasks.
	// Zero means runtime.NumCPU().
	MaxWorkers int

	// Seed makes the bootstrap path deterministic when non-zero. The
	// direct path ignores it. Each lag task derives its own generator
	// from Seed and the lag value, so results do not depend on
	// scheduling order.
	Seed int64
}

// Engine runs the shifted mutual information pipeline: bin once, then
// build one independent histogram per lag in parallel.
type Engine struct {
	cfg Config
}

// New creates a sweep engine. The configuration is validated per call,
// not here, because the data size is part of the validation.
func New(cfg Config) *Engine {
	if cfg.ShiftStep == 0 {
		cfg.ShiftStep = 1
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = runtime.NumCPU()
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// validate applies the fail-fast checks shared by both sweep paths.
func (e *Engine) validate(sizeX, sizeY int) error {
	c := e.cfg
	if sizeX != sizeY {
		return core.NewSizeMismatchError(sizeX, sizeY)
	}
	if c.ShiftFrom >= c.ShiftTo {
		return core.ErrInvalidShiftRange
	}
	if c.MinX >= c.MaxX {
		return core.NewAxisRangeError("x", c.MinX, c.MaxX)
	}
	if c.MinY >= c.MaxY {
		return core.NewAxisRangeError("y", c.MinY, c.MaxY)
	}
	if c.BinsX < 1 {
		return core.NewBinCountError("x", c.BinsX)
	}
	if c.BinsY < 1 {
		return core.NewBinCountError("y", c.BinsY)
	}
	if abs(c.ShiftTo) >= sizeX {
		return core.NewShiftTooLargeError(c.ShiftTo, sizeX)
	}
	if abs(c.ShiftFrom) >= sizeX {
		return core.NewShiftTooLargeError(c.ShiftFrom, sizeX)
	}
	if c.ShiftStep < 1 {
		return core.ErrInvalidShiftStep
	}
	if c.MaxWorkers < 1 {
		return core.ErrInvalidWorkerCount
	}
	return nil
}

// lagTask computes one MI estimate from the lag-aligned slices of the
// shared index sequences. Implementations own all mutable state they
// touch; the index slices are shared read-only.
type lagTask func(indicesX, indicesY []int, rng *rand.Rand) (float64, error)

// Sweep computes the mutual information between dataX and dataY at every
// lag of the configured grid. The result is indexed by
// (lag-ShiftFrom)/ShiftStep regardless of task completion order.
func (e *Engine) Sweep(ctx context.Context, dataX, dataY []float64) ([]float64, error) {
	return e.run(ctx, dataX, dataY, func(indicesX, indicesY []int, _ *rand.Rand) (float64, error) {
		hist, err := histogram.NewHistogram2D(e.cfg.BinsX, e.cfg.BinsY, e.cfg.MinX, e.cfg.MaxX, e.cfg.MinY, e.cfg.MaxY)
		if err != nil {
			return 0, err
		}
		if err := hist.IncrementIndices(indicesX, indicesY); err != nil {
			return 0, err
		}
		return hist.MutualInformation(false)
	})
}

// SweepBootstrap is Sweep with the per-lag estimate replaced by the
// two-level bootstrap described in bootstrap.go.
func (e *Engine) SweepBootstrap(ctx context.Context, dataX, dataY []float64, nrSamples int) ([]float64, error) {
	if nrSamples < 1 {
		return nil, core.ErrInvalidSampleCount
	}
	return e.run(ctx, dataX, dataY, func(indicesX, indicesY []int, rng *rand.Rand) (float64, error) {
		return bootstrappedMI(e.cfg, indicesX, indicesY, nrSamples, rng)
	})
}

// run validates, bins both sequences once, then executes one task per
// lag under a semaphore bound. Each task owns its histogram(s); the only
// shared writes go to distinct slots of the result slice.
func (e *Engine) run(ctx context.Context, dataX, dataY []float64, task lagTask) ([]float64, error) {
	c := e.cfg
	if err := e.validate(len(dataX), len(dataY)); err != nil {
		return nil, err
	}

	indicesX, err := histogram.CalculateIndices1D(c.BinsX, c.MinX, c.MaxX, dataX)
	if err != nil {
		return nil, err
	}
	indicesY, err := histogram.CalculateIndices1D(c.BinsY, c.MinY, c.MaxY, dataY)
	if err != nil {
		return nil, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	n := len(indicesX)
	result := make([]float64, (c.ShiftTo-c.ShiftFrom)/c.ShiftStep+1)
	sem := semaphore.NewWeighted(int64(c.MaxWorkers))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for lag := c.ShiftFrom; lag <= c.ShiftTo; lag += c.ShiftStep {
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func(lag int) {
			defer wg.Done()
			defer sem.Release(1)

			xs, ys := alignForLag(indicesX, indicesY, lag, n)
			rng := rand.New(rand.NewSource(seed + int64(lag)*0x9E3779B9))

			mi, err := task(xs, ys, rng)
			if err != nil {
				fail(err)
				return
			}
			// Deterministic slot, no lock needed: every task writes a
			// distinct index.
			result[(lag-c.ShiftFrom)/c.ShiftStep] = mi
		}(lag)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// alignForLag selects the overlap region of the two index sequences for
// a given lag. Negative lags truncate X at the tail and offset Y from
// the front; positive lags do the opposite.
func alignForLag(indicesX, indicesY []int, lag, n int) ([]int, []int) {
	switch {
	case lag < 0:
		return indicesX[:n+lag], indicesY[-lag:]
	case lag > 0:
		return indicesX[lag:], indicesY[:n-lag]
	default:
		return indicesX, indicesY
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
