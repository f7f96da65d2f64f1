package randist

import (
	"math"
	"math/rand/v2"
)

// Gamma returns a gamma variate with shape a and scale b, using the
// Marsaglia-Tsang squeeze method. Shapes below one are boosted with
// Gamma(a+1) * U^(1/a). A negative or NaN shape yields NaN.
func Gamma(rng *rand.Rand, a, b float64) float64 {
	if !(a >= 0) {
		return math.NaN()
	}

	if a < 1 {
		u := uniformPos(rng)
		return Gamma(rng, 1+a, b) * math.Pow(u, 1/a)
	}

	d := a - 1.0/3.0
	c := (1.0 / 3.0) / math.Sqrt(d)

	var x, v float64
	for {
		for {
			x = rng.NormFloat64()
			v = 1 + c*x

			if !(v <= 0) {
				break
			}
		}

		v = v * v * v
		u := uniformPos(rng)

		if u < 1-0.0331*x*x*x*x {
			break
		}

		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			break
		}
	}

	return b * d * v
}

// GammaPDF returns the gamma density with shape a and scale b at x.
func GammaPDF(x, a, b float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case a == 1:
			return 1 / b
		case a < 1:
			return math.Inf(1)
		}

		return 0
	case a == 1:
		return math.Exp(-x/b) / b
	}

	return math.Exp(GammaLnPDF(x, a, b))
}

// GammaLnPDF returns the natural logarithm of [GammaPDF].
func GammaLnPDF(x, a, b float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}

	return (a-1)*math.Log(x/b) - x/b - lgamma(a) - math.Log(b)
}

// uniformPos returns a uniform variate on the open interval (0, 1).
func uniformPos(rng *rand.Rand) float64 {
	for {
		u := rng.Float64()
		if u > 0 {
			return u
		}
	}
}
