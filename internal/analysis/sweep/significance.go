package sweep

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// GTestPValue converts a binned MI estimate into a p-value under the
// independence null. The G statistic 2*N*MI*ln2 is asymptotically
// chi-squared with (binsX-1)*(binsY-1) degrees of freedom; N is the
// number of in-range samples behind the estimate.
//
// This is an asymptotic approximation, not a permutation test: for very
// sparse grids (N comparable to the cell count) treat it as a rough
// screen only.
func GTestPValue(mi float64, n, binsX, binsY int) float64 {
	df := float64((binsX - 1) * (binsY - 1))
	if df < 1 || n < 1 || mi <= 0 {
		return 1.0
	}

	g := 2.0 * float64(n) * mi * math.Ln2
	chiDist := distuv.ChiSquared{K: df}
	return 1 - chiDist.CDF(g)
}
