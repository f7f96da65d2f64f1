package randist

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
)

// DirichletDist is a Dirichlet distribution with validated concentration
// parameters. Sampling uses the generator given by [WithRNG], so a
// DirichletDist is not safe for concurrent sampling.
type DirichletDist struct {
	alpha      []float64
	alpha0     float64
	lnNorm     float64 // lnΓ(α0) - Σ lnΓ(α_i)
	simplexTol float64
	rng        *rand.Rand
}

// NewDirichlet creates a Dirichlet distribution with the given concentration
// parameters. Every alpha must be finite and > 0. The slice is copied.
func NewDirichlet(alpha []float64, opts ...Option) (*DirichletDist, error) {
	err := validateAlpha(alpha)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	dist := &DirichletDist{
		alpha:      slices.Clone(alpha),
		alpha0:     floats.Sum(alpha),
		simplexTol: cfg.simplexTol,
		rng:        cfg.rng,
	}

	if dist.rng == nil {
		dist.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	dist.lnNorm = lgamma(dist.alpha0)
	for _, a := range dist.alpha {
		dist.lnNorm -= lgamma(a)
	}

	return dist, nil
}

// Dim returns the number of components K.
func (d *DirichletDist) Dim() int { return len(d.alpha) }

// Alpha returns a copy of the concentration parameters.
func (d *DirichletDist) Alpha() []float64 { return slices.Clone(d.alpha) }

// Concentration returns α0, the sum of the concentration parameters.
func (d *DirichletDist) Concentration() float64 { return d.alpha0 }

// Sample draws one variate into dst and returns it. A new slice is
// allocated when dst is shorter than Dim; otherwise dst[:Dim] is used.
func (d *DirichletDist) Sample(dst []float64) []float64 {
	dst = d.resize(dst)
	Dirichlet(d.rng, d.alpha, dst)

	return dst
}

// SampleN draws n independent variates.
func (d *DirichletDist) SampleN(n int) [][]float64 {
	if n <= 0 {
		return nil
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = d.Sample(nil)
	}

	return out
}

// LogProb returns the log-density at theta. Points off the simplex, with a
// negative component or a sum further than the simplex tolerance from one,
// have log-density -Inf. Panics if len(theta) != Dim.
func (d *DirichletDist) LogProb(theta []float64) float64 {
	if len(theta) != len(d.alpha) {
		panic("randist: theta length does not match dimension")
	}

	var sum float64
	for _, t := range theta {
		if !(t >= 0) {
			return math.Inf(-1)
		}

		sum += t
	}

	if math.Abs(sum-1) > d.simplexTol {
		return math.Inf(-1)
	}

	logP := d.lnNorm
	for i, a := range d.alpha {
		// θ_i^0 is 1 even on the boundary.
		if a == 1 {
			continue
		}

		logP += (a - 1) * math.Log(theta[i])
	}

	return logP
}

// Prob returns the density at theta. See [DirichletDist.LogProb].
func (d *DirichletDist) Prob(theta []float64) float64 {
	return math.Exp(d.LogProb(theta))
}

// Mean writes E[θ_i] = α_i/α0 into dst and returns it.
func (d *DirichletDist) Mean(dst []float64) []float64 {
	dst = d.resize(dst)
	for i, a := range d.alpha {
		dst[i] = a / d.alpha0
	}

	return dst
}

// Mode writes the mode (α_i-1)/(α0-K) into dst and returns it. The mode is
// interior only when every α_i > 1; otherwise [ErrNoMode] is returned.
func (d *DirichletDist) Mode(dst []float64) ([]float64, error) {
	for _, a := range d.alpha {
		if a <= 1 {
			return nil, ErrNoMode
		}
	}

	dst = d.resize(dst)
	denom := d.alpha0 - float64(len(d.alpha))

	for i, a := range d.alpha {
		dst[i] = (a - 1) / denom
	}

	return dst, nil
}

// Variance writes Var[θ_i] into dst and returns it.
func (d *DirichletDist) Variance(dst []float64) []float64 {
	dst = d.resize(dst)
	scale := d.alpha0 * d.alpha0 * (d.alpha0 + 1)

	for i, a := range d.alpha {
		dst[i] = a * (d.alpha0 - a) / scale
	}

	return dst
}

// Covariance returns Cov[θ_i, θ_j].
func (d *DirichletDist) Covariance(i, j int) float64 {
	scale := d.alpha0 * d.alpha0 * (d.alpha0 + 1)
	if i == j {
		return d.alpha[i] * (d.alpha0 - d.alpha[i]) / scale
	}

	return -d.alpha[i] * d.alpha[j] / scale
}

// Entropy returns the differential entropy in nats.
func (d *DirichletDist) Entropy() float64 {
	k := float64(len(d.alpha))
	ent := -d.lnNorm + (d.alpha0-k)*mathext.Digamma(d.alpha0)

	for _, a := range d.alpha {
		ent -= (a - 1) * mathext.Digamma(a)
	}

	return ent
}

// MarginalParams returns the parameters of the Beta(a, b) marginal
// distribution of θ_i.
func (d *DirichletDist) MarginalParams(i int) (a, b float64) {
	return d.alpha[i], d.alpha0 - d.alpha[i]
}

func (d *DirichletDist) resize(dst []float64) []float64 {
	if len(dst) < len(d.alpha) {
		return make([]float64, len(d.alpha))
	}

	return dst[:len(d.alpha)]
}
