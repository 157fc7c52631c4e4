package sweep

import (
	"context"
	"testing"

	"misweep/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepBootstrapSampleCountValidation(t *testing.T) {
	data := sinoidData(500)

	_, err := New(baseConfig()).SweepBootstrap(context.Background(), data, data, 0)
	assert.ErrorIs(t, err, core.ErrInvalidSampleCount)
}

func TestSweepBootstrapDeterministicWithSeed(t *testing.T) {
	data := sinoidData(500)
	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -20, 20
	cfg.Seed = 42

	first, err := New(cfg).SweepBootstrap(context.Background(), data, data, 10)
	require.NoError(t, err)

	cfg.MaxWorkers = 3 // scheduling must not change seeded results
	second, err := New(cfg).SweepBootstrap(context.Background(), data, data, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	cfg.Seed = 43
	third, err := New(cfg).SweepBootstrap(context.Background(), data, data, 10)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestSweepBootstrapApproximatesDirectEstimate(t *testing.T) {
	data := sinoidData(1000)
	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -2, 2
	cfg.Seed = 7

	direct, err := New(cfg).Sweep(context.Background(), data, data)
	require.NoError(t, err)

	// One sub-histogram fed the whole population resamples it once;
	// the estimate tracks the direct one within a tolerance band, it is
	// not exactly equal.
	boot, err := New(cfg).SweepBootstrap(context.Background(), data, data, 1)
	require.NoError(t, err)
	require.Len(t, boot, len(direct))

	for i := range direct {
		assert.InDelta(t, direct[i], boot[i], 0.35)
	}
}

func TestSweepBootstrapResultLength(t *testing.T) {
	data := sinoidData(400)
	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo, cfg.ShiftStep = -30, 31, 3
	cfg.Seed = 1

	result, err := New(cfg).SweepBootstrap(context.Background(), data, data, 8)
	require.NoError(t, err)
	assert.Len(t, result, 21)
}

// More requested sub-samples than data pairs leaves every sub-histogram
// empty, so the final histogram has no defined MI.
func TestSweepBootstrapOversampledPopulation(t *testing.T) {
	data := sinoidData(100)
	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -2, 2
	cfg.Seed = 1

	_, err := New(cfg).SweepBootstrap(context.Background(), data, data, 1000)
	assert.ErrorIs(t, err, core.ErrEmptyHistogram)
}
