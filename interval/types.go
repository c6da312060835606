package interval

// Real is the set of IEEE-754 binary floating types this package
// operates over. The kernel is parametric in one of these; both
// float32 and float64 are supported (an "extended precision" scalar
// is left to a future float64-equivalent type, since Go exposes no
// long double).
type Real interface {
	~float32 | ~float64
}

// Interval is a pair (Lo, Hi) of a real scalar with Lo <= Hi.
//
// A zero-value Interval is the degenerate point interval [0,0]; use
// Point or Bounds to construct one from real data.
type Interval[T Real] struct {
	Lo T
	Hi T
}

// Point returns the singleton interval [x, x].
func Point[T Real](x T) Interval[T] {
	return Interval[T]{Lo: x, Hi: x}
}

// Bounds returns the interval [min(a,b), max(a,b)].
func Bounds[T Real](a, b T) Interval[T] {
	if a <= b {
		return Interval[T]{Lo: a, Hi: b}
	}
	return Interval[T]{Lo: b, Hi: a}
}

// IsSingleton reports whether the interval's bounds coincide.
func (iv Interval[T]) IsSingleton() bool {
	return iv.Lo == iv.Hi
}

// Mid returns the interval's midpoint. It is used only for diagnostics
// and sign-monotonicity tests; decisions are never made from it.
func (iv Interval[T]) Mid() T {
	return iv.Lo + (iv.Hi-iv.Lo)/2
}
