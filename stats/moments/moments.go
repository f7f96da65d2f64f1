// Package moments accumulates per-component sample moments of vector draws,
// such as points sampled from a Dirichlet distribution.
package moments

import "math"

// Accumulator tracks the running mean and variance of each component of a
// stream of equal-length vectors, using Welford's online update for
// numerical stability.
type Accumulator struct {
	count int
	mean  []float64
	m2    []float64
}

// NewAccumulator returns an Accumulator for vectors of length dim.
func NewAccumulator(dim int) *Accumulator {
	return &Accumulator{
		mean: make([]float64, dim),
		m2:   make([]float64, dim),
	}
}

// Dim returns the vector length.
func (a *Accumulator) Dim() int { return len(a.mean) }

// Count returns the number of vectors added.
func (a *Accumulator) Count() int { return a.count }

// Add folds x into the running moments. Panics if len(x) != Dim.
func (a *Accumulator) Add(x []float64) {
	if len(x) != len(a.mean) {
		panic("moments: vector length does not match dimension")
	}

	a.count++
	n := float64(a.count)

	for i, v := range x {
		delta := v - a.mean[i]
		a.mean[i] += delta / n
		a.m2[i] += delta * (v - a.mean[i])
	}
}

// Mean writes the per-component mean into dst and returns it. A new slice
// is allocated when dst is too short.
func (a *Accumulator) Mean(dst []float64) []float64 {
	dst = a.resize(dst)
	copy(dst, a.mean)

	return dst
}

// Variance writes the per-component population variance into dst and
// returns it. All zeros before any vector has been added.
func (a *Accumulator) Variance(dst []float64) []float64 {
	dst = a.resize(dst)
	for i := range dst {
		if a.count == 0 {
			dst[i] = 0
			continue
		}

		dst[i] = a.m2[i] / float64(a.count)
	}

	return dst
}

// Reset clears all accumulated state.
func (a *Accumulator) Reset() {
	a.count = 0
	clear(a.mean)
	clear(a.m2)
}

func (a *Accumulator) resize(dst []float64) []float64 {
	if len(dst) < len(a.mean) {
		return make([]float64, len(a.mean))
	}

	return dst[:len(a.mean)]
}

// Summary holds per-component statistics of a set of vectors.
type Summary struct {
	Count    int
	Mean     []float64
	Variance []float64
	StdDev   []float64
	Min      []float64
	Max      []float64
}

// Summarize computes a [Summary] of samples in a single pass. All samples
// must have the length of the first one. An empty input yields a zero
// Summary.
func Summarize(samples [][]float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	dim := len(samples[0])
	acc := NewAccumulator(dim)
	minVals := append([]float64(nil), samples[0]...)
	maxVals := append([]float64(nil), samples[0]...)

	for _, x := range samples {
		acc.Add(x)

		for i, v := range x {
			minVals[i] = math.Min(minVals[i], v)
			maxVals[i] = math.Max(maxVals[i], v)
		}
	}

	variance := acc.Variance(nil)
	stdDev := make([]float64, dim)

	for i, v := range variance {
		stdDev[i] = math.Sqrt(v)
	}

	return Summary{
		Count:    acc.Count(),
		Mean:     acc.Mean(nil),
		Variance: variance,
		StdDev:   stdDev,
		Min:      minVals,
		Max:      maxVals,
	}
}
