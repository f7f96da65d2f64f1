package testutil

import (
	"math"
	"math/rand/v2"
	"slices"
)

// DeterministicRNG returns a PCG generator with a fixed seed for
// reproducible draws.
func DeterministicRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// KSStatistic returns the one-sample Kolmogorov-Smirnov statistic of
// samples against cdf. samples is not modified.
func KSStatistic(samples []float64, cdf func(float64) float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/n-f, f-float64(i)/n))
	}
	return d
}

// KSBound returns a generous acceptance bound for [KSStatistic] with n
// samples (about the 0.05% level).
func KSBound(n int) float64 {
	return 2.0 / math.Sqrt(float64(n))
}
