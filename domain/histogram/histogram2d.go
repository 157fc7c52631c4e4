package histogram

import (
	"math"

	"misweep/domain/core"
)

// Histogram2D is a joint counting grid over two binned axes. The grid
// shape and axis ranges are fixed at construction; accumulation happens
// through single insertions, bulk insertions of pre-binned indices, or
// elementwise addition of another histogram with the same shape.
//
// The marginal projections and the mutual information value are computed
// lazily and cached. The caches are NOT invalidated by later insertions:
// callers that mutate a histogram after reading a derived value must pass
// force=true to refresh it. This mirrors the behavior observed in
// practice and is deliberately kept rather than silently fixed.
type Histogram2D struct {
	binsX int
	binsY int
	minX  float64
	maxX  float64
	minY  float64
	maxY  float64
	grid  [][]int
	count int

	marginalX *Histogram1D
	marginalY *Histogram1D
	mutual    *float64
}

// NewHistogram2D creates an empty joint histogram for two validated axes.
func NewHistogram2D(binsX, binsY int, minX, maxX, minY, maxY float64) (*Histogram2D, error) {
	if minX >= maxX {
		return nil, core.NewAxisRangeError("x", minX, maxX)
	}
	if minY >= maxY {
		return nil, core.NewAxisRangeError("y", minY, maxY)
	}
	if binsX < 1 {
		return nil, core.NewBinCountError("x", binsX)
	}
	if binsY < 1 {
		return nil, core.NewBinCountError("y", binsY)
	}

	grid := make([][]int, binsX)
	for i := range grid {
		grid[i] = make([]int, binsY)
	}
	return &Histogram2D{
		binsX: binsX,
		binsY: binsY,
		minX:  minX,
		maxX:  maxX,
		minY:  minY,
		maxY:  maxY,
		grid:  grid,
	}, nil
}

// Accumulate maps a raw (x,y) sample onto the grid and counts it.
// Samples with either coordinate outside its axis range are skipped
// silently and do not contribute to Count.
func (h *Histogram2D) Accumulate(x, y float64) {
	ix := binIndex(h.binsX, h.minX, h.maxX, x)
	iy := binIndex(h.binsY, h.minY, h.maxY, y)
	h.IncrementAt(ix, iy)
}

// AccumulateAll runs Accumulate over two equal-length sequences.
func (h *Histogram2D) AccumulateAll(dataX, dataY []float64) error {
	if len(dataX) != len(dataY) {
		return core.NewSizeMismatchError(len(dataX), len(dataY))
	}
	for i := range dataX {
		h.Accumulate(dataX[i], dataY[i])
	}
	return nil
}

// IncrementAt counts one sample at an already-computed pair of bin
// indices. Indices outside [0,bins) on either axis are skipped silently;
// this supports pre-binned index streams without re-validating raw values.
func (h *Histogram2D) IncrementAt(ix, iy int) {
	if ix < 0 || ix >= h.binsX || iy < 0 || iy >= h.binsY {
		return
	}
	h.grid[ix][iy]++
	h.count++
}

// IncrementIndices bulk-inserts two parallel index slices. The slices
// must have equal length; out-of-range positions are skipped per sample.
func (h *Histogram2D) IncrementIndices(indicesX, indicesY []int) error {
	if len(indicesX) != len(indicesY) {
		return core.NewSizeMismatchError(len(indicesX), len(indicesY))
	}
	for i := range indicesX {
		h.IncrementAt(indicesX[i], indicesY[i])
	}
	return nil
}

// IncrementPairs bulk-inserts a pre-binned index-pair stream.
func (h *Histogram2D) IncrementPairs(pairs []IndexPair) {
	for _, p := range pairs {
		h.IncrementAt(p.X, p.Y)
	}
}

// Add sums another histogram into this one, cell by cell. Both
// histograms need the same bin shape.
func (h *Histogram2D) Add(other *Histogram2D) error {
	if h.binsX != other.binsX || h.binsY != other.binsY {
		return core.NewShapeMismatchError(h.binsX, h.binsY, other.binsX, other.binsY)
	}
	for i := range h.grid {
		for j := range h.grid[i] {
			h.grid[i][j] += other.grid[i][j]
		}
	}
	h.count += other.count
	return nil
}

// Reduce1D projects the joint grid onto its two marginal histograms.
// The result is computed once and cached; later insertions do not refresh
// it unless force is set (see the type comment for the cache contract).
func (h *Histogram2D) Reduce1D(force bool) (*Histogram1D, *Histogram1D) {
	if h.marginalX != nil && h.marginalY != nil && !force {
		return h.marginalX, h.marginalY
	}

	// Axis parameters were validated at construction, so these cannot fail.
	mx, _ := NewHistogram1D(h.binsX, h.minX, h.maxX)
	my, _ := NewHistogram1D(h.binsY, h.minY, h.maxY)
	for i := range h.grid {
		for j, c := range h.grid[i] {
			if c == 0 {
				continue
			}
			mx.addCount(i, c)
			my.addCount(j, c)
		}
	}
	h.marginalX = mx
	h.marginalY = my
	return h.marginalX, h.marginalY
}

// MutualInformation computes MI = H(X) + H(Y) - H(X,Y) in bits from the
// empirical cell probabilities. The scalar is cached with the same
// laziness contract as Reduce1D. An empty histogram has no defined MI.
func (h *Histogram2D) MutualInformation(force bool) (float64, error) {
	if h.mutual != nil && !force {
		return *h.mutual, nil
	}
	if h.count == 0 {
		return 0, core.ErrEmptyHistogram
	}

	total := float64(h.count)
	joint := 0.0
	for i := range h.grid {
		for _, c := range h.grid[i] {
			if c == 0 {
				continue
			}
			p := float64(c) / total
			joint -= p * math.Log2(p)
		}
	}

	marginalX, marginalY := h.Reduce1D(force)
	hx, err := marginalX.Entropy()
	if err != nil {
		return 0, err
	}
	hy, err := marginalY.Entropy()
	if err != nil {
		return 0, err
	}

	mi := hx + hy - joint
	h.mutual = &mi
	return mi, nil
}

// BinsX returns the x-axis bin count fixed at construction.
func (h *Histogram2D) BinsX() int { return h.binsX }

// BinsY returns the y-axis bin count fixed at construction.
func (h *Histogram2D) BinsY() int { return h.binsY }

// Count returns the total number of in-range insertions.
func (h *Histogram2D) Count() int { return h.count }

// MinX returns the (supposed) minimum of the first data sequence.
func (h *Histogram2D) MinX() float64 { return h.minX }

// MaxX returns the (supposed) maximum of the first data sequence.
func (h *Histogram2D) MaxX() float64 { return h.maxX }

// MinY returns the (supposed) minimum of the second data sequence.
func (h *Histogram2D) MinY() float64 { return h.minY }

// MaxY returns the (supposed) maximum of the second data sequence.
func (h *Histogram2D) MaxY() float64 { return h.maxY }

// Grid returns the underlying binsX x binsY counting grid.
func (h *Histogram2D) Grid() [][]int { return h.grid }
