package histogram

import (
	"testing"

	"misweep/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistogram1DValidation(t *testing.T) {
	_, err := NewHistogram1D(10, 1, 0)
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = NewHistogram1D(0, 0, 1)
	assert.ErrorIs(t, err, core.ErrInvalidBinCount)
}

func TestHistogram1DAccumulate(t *testing.T) {
	h, err := NewHistogram1D(10, 0, 1)
	require.NoError(t, err)

	h.Accumulate(0.05)
	h.Accumulate(0.95)
	h.Accumulate(1.0)  // exact max lands in the last bin
	h.Accumulate(-0.1) // skipped
	h.Accumulate(1.1)  // skipped

	assert.Equal(t, 3, h.Count())
	assert.Equal(t, 1, h.Counts()[0])
	assert.Equal(t, 2, h.Counts()[9])
}

func TestHistogram1DIncrementSkipsOutOfRange(t *testing.T) {
	h, err := NewHistogram1D(5, 0, 1)
	require.NoError(t, err)

	h.Increment(4)
	h.Increment(5)
	h.Increment(OutOfRange)

	assert.Equal(t, 1, h.Count())
}

func TestHistogram1DEntropy(t *testing.T) {
	h, err := NewHistogram1D(4, 0, 4)
	require.NoError(t, err)

	_, err = h.Entropy()
	assert.ErrorIs(t, err, core.ErrEmptyHistogram)

	for i := 0; i < 4; i++ {
		h.Increment(i)
	}
	entropy, err := h.Entropy()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, entropy, 1e-12) // uniform over 4 bins

	// Concentrating mass lowers the entropy.
	h2, err := NewHistogram1D(4, 0, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		h2.Increment(0)
	}
	entropy2, err := h2.Entropy()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, entropy2, 1e-12)
}
