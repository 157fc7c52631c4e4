package sweep

import (
	"context"
	"math"
	"testing"

	"misweep/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sinoidData(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(0.01 * float64(i))
	}
	return data
}

func baseConfig() Config {
	return Config{
		ShiftFrom: -100,
		ShiftTo:   100,
		ShiftStep: 1,
		BinsX:     10,
		BinsY:     10,
		MinX:      -1,
		MaxX:      1,
		MinY:      -1,
		MaxY:      1,
	}
}

func TestSweepSinoidSymmetry(t *testing.T) {
	data := sinoidData(1000)
	engine := New(baseConfig())

	result, err := engine.Sweep(context.Background(), data, data)
	require.NoError(t, err)
	require.Len(t, result, 201)

	maxIdx := 0
	for i, v := range result {
		if v > result[maxIdx] {
			maxIdx = i
		}
	}
	assert.Equal(t, 100, maxIdx, "self-MI must peak at lag 0")

	// Swapping the lag sign only transposes the joint histogram, so the
	// series is symmetric about lag 0 up to float summation order.
	for k := 1; k <= 100; k++ {
		assert.InDelta(t, result[100-k], result[100+k], 1e-9)
	}
}

func TestSweepStepThree(t *testing.T) {
	data := sinoidData(1000)
	cfg := baseConfig()
	cfg.ShiftTo = 101
	cfg.ShiftStep = 3
	engine := New(cfg)

	result, err := engine.Sweep(context.Background(), data, data)
	require.NoError(t, err)
	require.Len(t, result, 67)

	maxIdx := 0
	for i, v := range result {
		if v > result[maxIdx] {
			maxIdx = i
		}
	}
	// Lag 0 is not on the grid {-100,-97,...}; lag -1 at slot 33 is the
	// closest reachable lag and carries the maximum.
	assert.Equal(t, 33, maxIdx)
}

func TestSweepDeterministicAcrossWorkerCounts(t *testing.T) {
	data := sinoidData(500)
	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -50, 50

	cfg.MaxWorkers = 1
	serial, err := New(cfg).Sweep(context.Background(), data, data)
	require.NoError(t, err)

	cfg.MaxWorkers = 8
	parallel, err := New(cfg).Sweep(context.Background(), data, data)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestSweepValidation(t *testing.T) {
	data := sinoidData(200)
	ctx := context.Background()

	cfg := baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = 10, 10
	_, err := New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrInvalidShiftRange)

	cfg = baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -300, 100
	_, err = New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrShiftTooLarge)

	cfg = baseConfig()
	cfg.ShiftFrom, cfg.ShiftTo = -100, 250
	_, err = New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrShiftTooLarge)

	cfg = baseConfig()
	cfg.ShiftStep = -1
	_, err = New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrInvalidShiftStep)

	cfg = baseConfig()
	cfg.MinX, cfg.MaxX = 1, -1
	_, err = New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	cfg = baseConfig()
	cfg.BinsY = 0
	_, err = New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, core.ErrInvalidBinCount)

	_, err = New(baseConfig()).Sweep(ctx, data, data[:100])
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}

func TestSweepContextCancellation(t *testing.T) {
	data := sinoidData(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := baseConfig()
	cfg.MaxWorkers = 1
	_, err := New(cfg).Sweep(ctx, data, data)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlignForLag(t *testing.T) {
	x := []int{0, 1, 2, 3, 4}
	y := []int{5, 6, 7, 8, 9}

	xs, ys := alignForLag(x, y, 0, 5)
	assert.Equal(t, x, xs)
	assert.Equal(t, y, ys)

	xs, ys = alignForLag(x, y, 2, 5)
	assert.Equal(t, []int{2, 3, 4}, xs)
	assert.Equal(t, []int{5, 6, 7}, ys)

	xs, ys = alignForLag(x, y, -2, 5)
	assert.Equal(t, []int{0, 1, 2}, xs)
	assert.Equal(t, []int{7, 8, 9}, ys)
}
