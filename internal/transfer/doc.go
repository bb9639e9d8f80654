// Package transfer implements the transfer (Frobenius-Perron) operator of
// the logistic map.
//
// Given a density rho of initial conditions, one application of the
// operator yields the density of states after one map iteration:
//
//	(T rho)(y) = sum over preimages x of y of rho(x) / |f'(x)|
//
// [Operator] is itself a [density.Density], so chains T^n rho are built by
// repeated wrapping ([Iterate]); the fixed points of T are the invariant
// densities of the map. [Mass], [L1Distance] and [SupDistance] provide the
// quadrature and distances used to diagnose convergence toward them.
//
// The operator never fails: query points without a real preimage evaluate
// to exactly zero, the discriminant of the quadratic inversion is clamped
// against float rounding at the fold, and a vanishing derivative at the
// critical point contributes zero instead of Inf.
package transfer
