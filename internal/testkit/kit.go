package testkit

import (
	"math"
	"math/rand"
)

// TestKit generates deterministic paired series for tests and the demo
// driver. All generators take explicit seeds so runs are reproducible.

// Sinusoid returns n samples of sin(freq*i). With freq=0.01 and n=1000
// this is the canonical self-coupling fixture: its lag-swept MI is
// symmetric about lag 0 and maximal there.
func Sinusoid(n int, freq float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(freq * float64(i))
	}
	return data
}

// LaggedCopy returns a copy of data delayed by lag samples with additive
// uniform noise of the given amplitude. Positions before the lag are
// filled with noise only, so the output has the same length as the input.
func LaggedCopy(data []float64, lag int, noise float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(data))
	for i := range out {
		v := 0.0
		if i-lag >= 0 && i-lag < len(data) {
			v = data[i-lag]
		}
		out[i] = v + noise*(2*rng.Float64()-1)
	}
	return out
}

// CoupledPair returns two series of length n where y is x delayed by lag
// samples plus noise. Useful as a known-answer fixture: with the sweep's
// alignment convention the MI peak appears at shift -lag.
func CoupledPair(n, lag int, noise float64, seed int64) (x, y []float64) {
	x = Sinusoid(n, 0.5)
	y = LaggedCopy(x, lag, noise, seed)
	return x, y
}

// UniformPair returns two independent uniform series on [0,1).
// Their true MI is zero; the binned estimate carries only the
// finite-sample bias.
func UniformPair(n int, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()
		y[i] = rng.Float64()
	}
	return x, y
}
