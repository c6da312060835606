// Package kernel implements the three robust geometric predicates the
// flipper depends on — orientation, side-of-oriented-circle, and
// preferred-direction — plus the higher-level quad/edge tests composed
// from them.
//
// What
//
//   - Point[T] / Vector[T]: the data model, generic over any
//     interval.Real scalar.
//   - Orient, SideOfOrientedCircle, PreferredDirection: the three
//     exact-sign predicates.
//   - IsStrictlyConvexQuad, IsLocallyDelaunayEdge,
//     IsLocallyPDDelaunayEdge: predicate compositions with no extra
//     numerical subtlety.
//
// Why
//
//   - Floating-point determinants are not robust: near-degenerate
//     configurations (four nearly-cocircular points, near-collinear
//     triples) can flip sign under rounding error, corrupting the
//     flipper's termination argument. Every predicate here is
//     decision-exact: it always returns the true sign of its defining
//     polynomial.
//
// The filter pattern
//
//  1. Evaluate the defining determinant in interval arithmetic
//     (package interval), instantiated at the caller's scalar type.
//  2. Take interval.Sign. If it resolves, return the corresponding
//     discrete result.
//  3. Otherwise, increment the predicate's exact counter and
//     re-evaluate the identical determinant over *big.Rat, which is
//     always decisive. float64/float32 inputs convert to big.Rat
//     losslessly, since every IEEE-754 binary float is itself a dyadic
//     rational.
//
// The same symbolic determinant code (det.go) is instantiated against
// two capability sets — {interval.Add, interval.Sub, interval.Mul} and
// {big.Rat Add, Sub, Mul} — rather than dispatched dynamically, so the
// predicate logic is written exactly once per predicate.
//
// Statistics
//
//	Six process-wide counters (total + exact per predicate) are the
//	engine's headline quality metric: the ratio of exact-fallback calls
//	to total calls. Read with StatsFor, cleared with ResetStats.
package kernel
