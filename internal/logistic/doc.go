// Package logistic implements the logistic family f_r(x) = r*x*(1-x) on
// [0,1], the canonical one-dimensional model of deterministic chaos.
//
//   - [Map]: point evaluation, derivative, and analytic preimages
//   - [Map.Orbit]: forward iteration with transient discard
//
// The map is meaningful for r in [0,4] and x in [0,1]; outside that range
// every method still returns a defined finite number, so callers never need
// an error path for out-of-domain parameters.
package logistic
