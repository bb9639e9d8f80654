// Package analysis provides diagnostics for the logistic map and its
// transfer operator.
//
//   - [BifurcationDiagram]: parameter sweep recording attractor values
//   - [LyapunovExponent]: orbit-averaged log-slope; positive means chaos
//   - [Convergence]: distance between successive operator iterates,
//     tracking the approach to an invariant density
package analysis
