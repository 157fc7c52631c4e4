package histogram

import (
	"misweep/domain/core"
)

// OutOfRange marks a value that fell outside the [min,max] axis range.
// Out-of-range values are not an error: they are silently excluded from
// accumulation and never contribute to a histogram's count.
const OutOfRange = -1

// IndexPair holds the bin positions of one (x,y) sample on both axes.
// Either coordinate may be OutOfRange; a pair is only inserted when
// both are valid.
type IndexPair struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InRange reports whether both coordinates map to a real bin.
func (p IndexPair) InRange() bool {
	return p.X != OutOfRange && p.Y != OutOfRange
}

// binIndex maps a single value onto [0,bins) for a validated axis.
// The interval is closed on both ends: value==max lands in the last bin,
// everything outside [min,max] maps to OutOfRange.
func binIndex(bins int, min, max, value float64) int {
	if value == max {
		return bins - 1
	}
	if value >= min && value < max {
		return int((value - min) / (max - min) * float64(bins))
	}
	return OutOfRange
}

// CalculateIndices1D maps every value of data onto its bin index for an
// axis with the given bin count and range. Values outside [min,max] are
// marked OutOfRange.
func CalculateIndices1D(bins int, min, max float64, data []float64) ([]int, error) {
	if min >= max {
		return nil, core.NewAxisRangeError("x", min, max)
	}
	if bins < 1 {
		return nil, core.NewBinCountError("x", bins)
	}

	indices := make([]int, len(data))
	for i, value := range data {
		indices[i] = binIndex(bins, min, max, value)
	}
	return indices, nil
}

// CalculateIndices2D maps two equal-length sequences onto their joint bin
// positions. Both axes are validated independently; a pair with either
// coordinate outside its axis range gets OutOfRange on both coordinates.
func CalculateIndices2D(binsX, binsY int, minX, maxX, minY, maxY float64, dataX, dataY []float64) ([]IndexPair, error) {
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
	if len(dataX) != len(dataY) {
		return nil, core.NewSizeMismatchError(len(dataX), len(dataY))
	}

	pairs := make([]IndexPair, len(dataX))
	for i := range dataX {
		ix := binIndex(binsX, minX, maxX, dataX[i])
		iy := binIndex(binsY, minY, maxY, dataY[i])
		if ix == OutOfRange || iy == OutOfRange {
			pairs[i] = IndexPair{X: OutOfRange, Y: OutOfRange}
			continue
		}
		pairs[i] = IndexPair{X: ix, Y: iy}
	}
	return pairs, nil
}
