// Package randist provides random variates and densities for the Dirichlet
// distribution.
//
// The Dirichlet distribution of order K-1 is defined over the simplex
// θ_i >= 0, Σθ_i = 1 with density
//
//	p(θ_1, ..., θ_K) = (1/Z) Π θ_i^(α_i-1)
//	Z = Π Γ(α_i) / Γ(Σ α_i)
//
// for concentration parameters α_i > 0.
//
// Two layers are offered. The free functions [Dirichlet], [DirichletPDF]
// and [DirichletLnPDF] are thin numeric kernels: they do not validate their
// input, and invalid parameters yield NaN or Inf exactly as the formulas
// give. [DirichletDist] validates its parameters once at construction and
// adds moments, entropy and a simplex check on density evaluation.
//
// All sampling takes a caller-supplied *rand.Rand. A generator is not safe
// for concurrent use; give each goroutine its own.
package randist
