package randist

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// sqrtMinNormal is the square root of the smallest normal float64. Gamma
// sums below it are treated as underflowed.
const sqrtMinNormal = 1.4916681462400413e-154

// Dirichlet fills theta[:len(alpha)] with a variate from the Dirichlet
// distribution with concentration parameters alpha.
//
// The values are obtained by drawing Gamma(alpha_i, 1) variates and
// renormalizing (Law and Kelton, Simulation Modeling and Analysis). If the
// gamma sum underflows, which happens for very small alphas, the variate is
// drawn in log space instead.
//
// The parameters are not validated. Panics if theta is shorter than alpha.
func Dirichlet(rng *rand.Rand, alpha, theta []float64) {
	k := len(alpha)
	if len(theta) < k {
		panic("randist: theta shorter than alpha")
	}

	if k == 0 {
		return
	}

	theta = theta[:k]
	for i, a := range alpha {
		theta[i] = Gamma(rng, a, 1)
	}

	norm := floats.Sum(theta)
	if norm < sqrtMinNormal {
		dirichletSmall(rng, alpha, theta)
		return
	}

	vecmath.ScaleBlock(theta, theta, 1/norm)
}

// dirichletSmall draws a Dirichlet variate for parameters whose gamma draws
// underflow. It uses Gamma(a) = Gamma(a+1) * U^(1/a) and factors out the
// largest U^(1/a) term before leaving log space.
func dirichletSmall(rng *rand.Rand, alpha, theta []float64) {
	for i, a := range alpha {
		theta[i] = math.Log(uniformPos(rng)) / a
	}

	umax := floats.Max(theta)
	for i := range theta {
		theta[i] = math.Exp(theta[i] - umax)
	}

	boost := make([]float64, len(alpha))
	for i, a := range alpha {
		boost[i] = Gamma(rng, a+1, 1)
	}

	vecmath.MulBlockInPlace(theta, boost)

	norm := floats.Sum(theta)
	vecmath.ScaleBlock(theta, theta, 1/norm)
}

// DirichletPDF returns the Dirichlet density with parameters alpha at
// theta[:len(alpha)].
func DirichletPDF(alpha, theta []float64) float64 {
	return math.Exp(DirichletLnPDF(alpha, theta))
}

// DirichletLnPDF returns the natural logarithm of the Dirichlet density with
// parameters alpha at theta[:len(alpha)]. The sum runs in log space so large
// alphas do not overflow.
//
// Neither the parameters nor the simplex constraint on theta are checked.
// Panics if theta is shorter than alpha.
func DirichletLnPDF(alpha, theta []float64) float64 {
	if len(theta) < len(alpha) {
		panic("randist: theta shorter than alpha")
	}

	var logP, sumAlpha float64
	for i, a := range alpha {
		logP += (a - 1) * math.Log(theta[i])
		sumAlpha += a
	}

	logP += lgamma(sumAlpha)
	for _, a := range alpha {
		logP -= lgamma(a)
	}

	return logP
}

func lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}
