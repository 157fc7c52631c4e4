package histogram

import (
	"testing"

	"misweep/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateIndices1D(t *testing.T) {
	input := make([]float64, 1000)
	for i := range input {
		input[i] = float64(i) - 500
	}

	indices, err := CalculateIndices1D(10, -500, 499, input)
	require.NoError(t, err)
	require.Len(t, indices, 1000)

	assert.Equal(t, 0, indices[0])
	assert.Equal(t, 0, indices[23])
	assert.Equal(t, 0, indices[99])
	assert.Equal(t, 1, indices[100])
	assert.Equal(t, 1, indices[199])
	assert.Equal(t, 9, indices[990])
	// Closed upper boundary: the exact max lands in the last bin.
	assert.Equal(t, 9, indices[999])
}

func TestCalculateIndices1DOutOfRange(t *testing.T) {
	indices, err := CalculateIndices1D(10, 0, 1, []float64{-0.5, 0.5, 1.5})
	require.NoError(t, err)

	assert.Equal(t, OutOfRange, indices[0])
	assert.Equal(t, 5, indices[1])
	assert.Equal(t, OutOfRange, indices[2])
}

func TestCalculateIndices1DValidation(t *testing.T) {
	_, err := CalculateIndices1D(10, 1, 1, []float64{0.5})
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = CalculateIndices1D(10, 2, 1, []float64{0.5})
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = CalculateIndices1D(0, 0, 1, []float64{0.5})
	assert.ErrorIs(t, err, core.ErrInvalidBinCount)
}

func TestCalculateIndices2D(t *testing.T) {
	inputX := make([]float64, 800)
	inputY := make([]float64, 800)
	for i := 0; i < 800; i++ {
		inputX[i] = float64(i) - 500
		inputY[i] = float64(i) - 400
	}

	pairs, err := CalculateIndices2D(10, 10,
		inputX[0], inputX[799], inputY[0], inputY[799],
		inputX, inputY)
	require.NoError(t, err)
	require.Len(t, pairs, 800)

	assert.Equal(t, IndexPair{X: 0, Y: 0}, pairs[0])
	assert.Equal(t, IndexPair{X: 0, Y: 0}, pairs[79])
	assert.Equal(t, IndexPair{X: 1, Y: 1}, pairs[80])
	assert.Equal(t, IndexPair{X: 9, Y: 9}, pairs[799])
}

func TestCalculateIndices2DOutOfRangePairs(t *testing.T) {
	// One coordinate out of range marks the whole pair.
	pairs, err := CalculateIndices2D(4, 4, 0, 1, 0, 1,
		[]float64{0.5, 2.0, 0.5},
		[]float64{0.5, 0.5, -1.0})
	require.NoError(t, err)

	assert.True(t, pairs[0].InRange())
	assert.Equal(t, IndexPair{X: OutOfRange, Y: OutOfRange}, pairs[1])
	assert.Equal(t, IndexPair{X: OutOfRange, Y: OutOfRange}, pairs[2])
}

func TestCalculateIndices2DValidation(t *testing.T) {
	x := []float64{0.5}
	y := []float64{0.5}

	_, err := CalculateIndices2D(10, 10, 1, 0, 0, 1, x, y)
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = CalculateIndices2D(10, 10, 0, 1, 1, 0, x, y)
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = CalculateIndices2D(0, 10, 0, 1, 0, 1, x, y)
	assert.ErrorIs(t, err, core.ErrInvalidBinCount)

	_, err = CalculateIndices2D(10, -1, 0, 1, 0, 1, x, y)
	assert.ErrorIs(t, err, core.ErrInvalidBinCount)

	_, err = CalculateIndices2D(10, 10, 0, 1, 0, 1, x, []float64{0.5, 0.6})
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}

func TestSingleBinMapsEverythingToZero(t *testing.T) {
	indices, err := CalculateIndices1D(1, 0, 10, []float64{0, 5, 10})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, indices)
}
