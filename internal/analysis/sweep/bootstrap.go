package sweep

import (
	"math/rand"

	"misweep/domain/histogram"
)

// bootstrappedMI estimates the mutual information of an already
// lag-aligned index-pair population through two nested resampling
// levels:
//
//  1. nrSamples sub-histograms, each fed floor(n/nrSamples) pairs drawn
//     uniformly with replacement from the population.
//  2. nrSamples draws with replacement from that ensemble, summed into
//     one final histogram whose MI is returned.
//
// The second level is part of the documented algorithm (bagging of
// bagged histograms), not an accident; do not collapse it into a
// single-level bootstrap.
func bootstrappedMI(cfg Config, indicesX, indicesY []int, nrSamples int, rng *rand.Rand) (float64, error) {
	n := len(indicesX)
	perHistogram := n / nrSamples

	ensemble := make([]*histogram.Histogram2D, nrSamples)
	for sample := 0; sample < nrSamples; sample++ {
		hist, err := histogram.NewHistogram2D(cfg.BinsX, cfg.BinsY, cfg.MinX, cfg.MaxX, cfg.MinY, cfg.MaxY)
		if err != nil {
			return 0, err
		}
		for i := 0; i < perHistogram; i++ {
			ridx := rng.Intn(n)
			hist.IncrementAt(indicesX[ridx], indicesY[ridx])
		}
		ensemble[sample] = hist
	}

	final, err := histogram.NewHistogram2D(cfg.BinsX, cfg.BinsY, cfg.MinX, cfg.MaxX, cfg.MinY, cfg.MaxY)
	if err != nil {
		return 0, err
	}
	for i := 0; i < nrSamples; i++ {
		if err := final.Add(ensemble[rng.Intn(nrSamples)]); err != nil {
			return 0, err
		}
	}
	return final.MutualInformation(false)
}
