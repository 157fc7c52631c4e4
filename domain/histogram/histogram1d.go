package histogram

import (
	"math"

	"misweep/domain/core"
)

// Histogram1D is a 1-D counting structure. It mostly appears as the
// marginal projection of a Histogram2D, but can also be filled directly
// from a pre-binned index stream.
type Histogram1D struct {
	bins   int
	min    float64
	max    float64
	counts []int
	count  int
}

// NewHistogram1D creates an empty histogram for a validated axis.
func NewHistogram1D(bins int, min, max float64) (*Histogram1D, error) {
	if min >= max {
		return nil, core.NewAxisRangeError("x", min, max)
	}
	if bins < 1 {
		return nil, core.NewBinCountError("x", bins)
	}
	return &Histogram1D{
		bins:   bins,
		min:    min,
		max:    max,
		counts: make([]int, bins),
	}, nil
}

// Accumulate maps a raw value onto its bin and counts it. Out-of-range
// values are skipped silently.
func (h *Histogram1D) Accumulate(value float64) {
	h.Increment(binIndex(h.bins, h.min, h.max, value))
}

// Increment counts one sample at an already-computed bin index.
// Indices outside [0,bins) are skipped silently.
func (h *Histogram1D) Increment(index int) {
	if index < 0 || index >= h.bins {
		return
	}
	h.counts[index]++
	h.count++
}

// addCount adds n samples at once to a single bin during marginal
// reduction. Callers guarantee the index is in range.
func (h *Histogram1D) addCount(index, n int) {
	h.counts[index] += n
	h.count += n
}

// Bins returns the bin count fixed at construction.
func (h *Histogram1D) Bins() int { return h.bins }

// Min returns the (supposed) minimum of the underlying data.
func (h *Histogram1D) Min() float64 { return h.min }

// Max returns the (supposed) maximum of the underlying data.
func (h *Histogram1D) Max() float64 { return h.max }

// Count returns the total number of in-range insertions.
func (h *Histogram1D) Count() int { return h.count }

// Counts returns the per-bin counters.
func (h *Histogram1D) Counts() []int { return h.counts }

// Entropy computes the Shannon entropy (base 2) of the empirical
// distribution. Zero-probability bins contribute nothing by the usual
// 0*log2(0)=0 convention.
func (h *Histogram1D) Entropy() (float64, error) {
	if h.count == 0 {
		return 0, core.ErrEmptyHistogram
	}
	total := float64(h.count)
	entropy := 0.0
	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}
