package randist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const defaultSimplexTolerance = 1e-9

type config struct {
	rng        *rand.Rand
	simplexTol float64
}

func defaultConfig() config {
	return config{
		simplexTol: defaultSimplexTolerance,
	}
}

// Option configures a [DirichletDist].
type Option func(*config) error

// WithRNG sets a deterministic random number generator for reproducible
// sampling.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

// WithSimplexTolerance sets how far Σθ may deviate from one before
// [DirichletDist.LogProb] treats θ as off the simplex (default 1e-9).
func WithSimplexTolerance(tol float64) Option {
	return func(cfg *config) error {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return fmt.Errorf("randist: simplex tolerance must be >= 0 and finite: %f", tol)
		}

		cfg.simplexTol = tol

		return nil
	}
}
