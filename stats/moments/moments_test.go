package moments

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-randist/internal/testutil"
	"github.com/cwbudde/algo-randist/randist"
	"gonum.org/v1/gonum/stat"
)

const tolerance = 1e-12

func TestAccumulatorMatchesReference(t *testing.T) {
	rng := testutil.DeterministicRNG(5)
	alpha := []float64{1, 2, 3}
	samples := make([][]float64, 500)
	for i := range samples {
		samples[i] = make([]float64, len(alpha))
		randist.Dirichlet(rng, alpha, samples[i])
	}

	acc := NewAccumulator(len(alpha))
	for _, s := range samples {
		acc.Add(s)
	}

	if acc.Count() != len(samples) {
		t.Fatalf("Count = %d, want %d", acc.Count(), len(samples))
	}

	mean := acc.Mean(nil)
	variance := acc.Variance(nil)
	column := make([]float64, len(samples))
	for i := range alpha {
		for j, s := range samples {
			column[j] = s[i]
		}

		wantMean, wantVar := stat.PopMeanVariance(column, nil)
		testutil.RequireNearlyEqual(t, mean[i], wantMean, tolerance)
		testutil.RequireNearlyEqual(t, variance[i], wantVar, tolerance)
	}
}

func TestAccumulatorEmpty(t *testing.T) {
	acc := NewAccumulator(2)
	testutil.RequireSliceNearlyEqual(t, acc.Mean(nil), []float64{0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, acc.Variance(nil), []float64{0, 0}, 0)
}

func TestAccumulatorConstant(t *testing.T) {
	acc := NewAccumulator(2)
	for range 10 {
		acc.Add([]float64{0.25, 0.75})
	}

	testutil.RequireSliceNearlyEqual(t, acc.Mean(nil), []float64{0.25, 0.75}, tolerance)
	testutil.RequireSliceNearlyEqual(t, acc.Variance(nil), []float64{0, 0}, tolerance)
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator(1)
	acc.Add([]float64{3})
	acc.Add([]float64{5})
	acc.Reset()

	if acc.Count() != 0 {
		t.Fatalf("Count after Reset = %d, want 0", acc.Count())
	}

	acc.Add([]float64{7})
	testutil.RequireSliceNearlyEqual(t, acc.Mean(nil), []float64{7}, 0)
}

func TestAccumulatorReusesBuffer(t *testing.T) {
	acc := NewAccumulator(2)
	acc.Add([]float64{1, 2})

	buf := make([]float64, 4)
	got := acc.Mean(buf)
	if len(got) != 2 || &got[0] != &buf[0] {
		t.Fatal("Mean did not reuse a long enough buffer")
	}
}

func TestAccumulatorLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for length mismatch")
		}
	}()

	NewAccumulator(2).Add([]float64{1})
}

func TestSummarize(t *testing.T) {
	samples := [][]float64{
		{0.1, 0.9},
		{0.5, 0.5},
		{0.3, 0.7},
	}

	s := Summarize(samples)
	if s.Count != 3 {
		t.Fatalf("Count = %d, want 3", s.Count)
	}

	testutil.RequireSliceNearlyEqual(t, s.Mean, []float64{0.3, 0.7}, tolerance)
	testutil.RequireSliceNearlyEqual(t, s.Min, []float64{0.1, 0.5}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Max, []float64{0.5, 0.9}, 0)

	wantVar := 0.08 / 3
	testutil.RequireSliceNearlyEqual(t, s.Variance, []float64{wantVar, wantVar}, tolerance)
	testutil.RequireSliceNearlyEqual(t, s.StdDev, []float64{math.Sqrt(wantVar), math.Sqrt(wantVar)}, tolerance)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Mean != nil {
		t.Fatalf("Summarize(nil) = %+v, want zero Summary", s)
	}
}

func TestSummarizeDirichletMatchesAnalytic(t *testing.T) {
	dist, err := randist.NewDirichlet([]float64{4, 6}, randist.WithRNG(testutil.DeterministicRNG(13)))
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(dist.SampleN(20000))
	testutil.RequireSliceNearlyEqual(t, s.Mean, dist.Mean(nil), 5e-3)
	testutil.RequireSliceNearlyEqual(t, s.Variance, dist.Variance(nil), 2e-3)
}
