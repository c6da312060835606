// rounding.go — the scoped rounding-mode acquisition and its software
// emulation.
//
// Every arithmetic operation is modeled as bracketed by acquiring the
// hardware rounding mode, computing the lower bound under
// round-toward-negative-infinity and the upper bound under
// round-toward-positive-infinity, then restoring the caller's mode on
// every exit path. Go has no portable way to touch the FPU control
// word (no stdlib or ecosystem equivalent of fesetround), so this
// package keeps the scope's *shape* — acquire, compute, always restore
// — but realizes "round toward infinity" as a one-ULP outward bump of
// the round-to-nearest result (see bumpDown/bumpUp below). The
// acquire/release bookkeeping still matters: it is what guarantees a
// scope is never left open across a panic, the same guarantee a real
// hardware-backed version would need to provide.
package interval

import "math"

// roundingDepth counts open scopes; it exists purely to catch unbalanced
// acquire/release in tests. It is not a correctness dependency of
// Add/Sub/Mul themselves.
var roundingDepth int

// acquireRounding opens a rounding-mode scope and returns a release
// function that must run on every exit path, including panics. Callers
// use it as:
//
//	release := acquireRounding()
//	defer release()
func acquireRounding() func() {
	roundingDepth++
	opened := roundingDepth
	released := false
	return func() {
		if released {
			panic(ErrRoundingScopeUnbalanced)
		}
		released = true
		if roundingDepth != opened {
			panic(ErrRoundingScopeUnbalanced)
		}
		roundingDepth--
	}
}

// scopeBalanced reports whether every opened rounding scope has been
// released; used by tests to verify rounding-restoration after a
// sequence of interval operations.
func scopeBalanced() bool {
	return roundingDepth == 0
}

// bumpDown returns the greatest representable T strictly less than x,
// emulating round-toward-negative-infinity for a value already rounded
// to nearest.
func bumpDown[T Real](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Nextafter(v, math.Inf(-1))).(T)
	case float32:
		return any(math.Nextafter32(v, float32(math.Inf(-1)))).(T)
	default:
		panic("interval: unsupported scalar type for directed rounding")
	}
}

// bumpUp returns the smallest representable T strictly greater than x,
// emulating round-toward-positive-infinity for a value already rounded
// to nearest.
func bumpUp[T Real](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Nextafter(v, math.Inf(1))).(T)
	case float32:
		return any(math.Nextafter32(v, float32(math.Inf(1)))).(T)
	default:
		panic("interval: unsupported scalar type for directed rounding")
	}
}
