// Package density provides density functions on [0,1] and the primitives
// shared by the transfer-operator machinery.
//
//   - [Density]: a pure function rho(x) -> value; the central abstraction
//   - [EvalAll]: parallel element-wise evaluation over a slice of points
//   - [Grid]: evenly spaced query points spanning [0,1]
//   - [Uniform], [Arcsine], [Hat], [Bump]: base densities seeding
//     operator chains
//   - [Sampled]: a density tabulated on a grid, linearly interpolated
//   - [Histogram]: an empirical density estimated from orbit samples
//
// Densities are values: no identity, no mutation, no lifecycle beyond the
// call that produces them. A density built by one transfer-operator
// application is a valid input to the next, which is how chains T^n rho
// are formed.
package density
