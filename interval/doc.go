// Package interval implements rounding-directed real-interval arithmetic:
// every operation widens its result outward so that the sign of an
// interval which strictly excludes zero is provably the sign of the
// true real result.
//
// What
//
//   - Interval[T] is a pair (Lo, Hi) of an ordered real type, Lo <= Hi.
//   - Add, Sub, Mul compute outward-rounded bounds: the lower bound is
//     rounded toward negative infinity, the upper bound toward positive
//     infinity.
//   - Sign reports the provable sign of an interval, or ErrIndeterminate
//     when the bounds straddle zero.
//
// Why
//
//   - A robust geometric predicate needs the exact sign of a polynomial
//     in floating-point input. Evaluating the polynomial once in interval
//     arithmetic is cheap and, whenever the resulting interval excludes
//     zero, conclusive — no exact fallback is required.
//
// Rounding discipline
//
//	Go exposes no portable access to the hardware FPU control word, so
//	directed rounding is emulated in software: every operation computes
//	the IEEE round-to-nearest result for each bound and then bumps it
//	one ULP outward with math.Nextafter toward -Inf (lower bound) or
//	+Inf (upper bound). This preserves the containment invariant
//	required by callers without any process-wide mutable rounding mode.
//	See acquireRounding in rounding.go for the scoped-acquisition shape
//	this emulates, and DESIGN.md for the rationale.
//
// Statistics
//
//	Package-level counters track total arithmetic operations and how
//	many Sign or Less calls returned ErrIndeterminate, per scalar type.
//	Read with StatsFor[T] and cleared with ResetStats[T]; single-run diagnostics
//	only, not a concurrency-safe metric.
package interval
