// Package config resolves the preferred-direction pair (u, v) the
// flipper runs against: a primary direction u and a tie-breaker v,
// neither zero, parallel to the other, nor orthogonal to the other.
//
// Resolution follows a functional-options pattern: DefaultOptions
// supplies the compiled defaults (u = (1,0), v = (1,1)); options layer
// on top in call order; Resolve validates the final pair via
// kernel.ValidateDirections before the flipper ever runs, exactly
// once, regardless of how (u, v) arrived.
package config
