// det.go — the shared symbolic determinant code, instantiated once
// against an interval capability set and once against an exact
// *big.Rat capability set: {+, -, x, sign} expressed once and run
// twice.
package kernel

import (
	"math/big"

	"github.com/lvlath-labs/pddelaunay/interval"
)

// ring is the capability set a determinant formula needs: addition,
// subtraction, and multiplication over some representation R of a real
// number. Both the interval filter and the exact engine instantiate
// the same determinant formulas against their own ring.
type ring[R any] struct {
	add func(a, b R) R
	sub func(a, b R) R
	mul func(a, b R) R
}

// intervalRing builds the ring for interval.Interval[T].
func intervalRing[T Real]() ring[interval.Interval[T]] {
	return ring[interval.Interval[T]]{
		add: interval.Add[T],
		sub: interval.Sub[T],
		mul: interval.Mul[T],
	}
}

// ratAdd, ratSub, ratMul allocate a fresh *big.Rat result, mirroring
// the value semantics of interval.Add/Sub/Mul (big.Rat's own methods
// mutate the receiver in place, which would alias shared inputs).
func ratAdd(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func ratSub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func ratMul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// exactRing is the ring for exact *big.Rat arithmetic.
var exactRing = ring[*big.Rat]{add: ratAdd, sub: ratSub, mul: ratMul}

// toRat converts a real scalar to its exact rational value. Every
// IEEE-754 binary float is a dyadic rational, so this never loses
// precision regardless of T being float32 or float64.
func toRat[T Real](x T) *big.Rat {
	return new(big.Rat).SetFloat64(float64(x))
}

// toIvPoint lifts a scalar to the singleton interval [x, x].
func toIvPoint[T Real](x T) interval.Interval[T] {
	return interval.Point(x)
}

// orientationDet evaluates (ax-cx)(by-cy) - (bx-cx)(ay-cy) over ring r.
func orientationDet[R any](r ring[R], ax, ay, bx, by, cx, cy R) R {
	t1 := r.mul(r.sub(ax, cx), r.sub(by, cy))
	t2 := r.mul(r.sub(bx, cx), r.sub(ay, cy))
	return r.sub(t1, t2)
}

// inCircleDet evaluates the 3x3 in-circle determinant obtained by
// lifting a, b, c to (x, y, x^2+y^2) and subtracting row d, expanded
// along its first (a) row.
func inCircleDet[R any](r ring[R], ax, ay, bx, by, cx, cy, dx, dy R) R {
	adx, ady := r.sub(ax, dx), r.sub(ay, dy)
	bdx, bdy := r.sub(bx, dx), r.sub(by, dy)
	cdx, cdy := r.sub(cx, dx), r.sub(cy, dy)

	adSq := r.add(r.mul(adx, adx), r.mul(ady, ady))
	bdSq := r.add(r.mul(bdx, bdx), r.mul(bdy, bdy))
	cdSq := r.add(r.mul(cdx, cdx), r.mul(cdy, cdy))

	t1 := r.mul(adx, r.sub(r.mul(bdy, cdSq), r.mul(cdy, bdSq)))
	t2 := r.mul(ady, r.sub(r.mul(bdx, cdSq), r.mul(cdx, bdSq)))
	t3 := r.mul(adSq, r.sub(r.mul(bdx, cdy), r.mul(cdx, bdy)))

	return r.sub(r.add(t1, t3), t2)
}

// preferredDirectionDet evaluates |delta|^2 (beta.v)^2 - |beta|^2 (delta.v)^2
// where beta = b - a, delta = d - c.
func preferredDirectionDet[R any](r ring[R], ax, ay, bx, by, cx, cy, dx, dy, vx, vy R) R {
	betaX, betaY := r.sub(bx, ax), r.sub(by, ay)
	deltaX, deltaY := r.sub(dx, cx), r.sub(dy, cy)

	betaV := r.add(r.mul(betaX, vx), r.mul(betaY, vy))
	deltaV := r.add(r.mul(deltaX, vx), r.mul(deltaY, vy))

	betaSq := r.add(r.mul(betaX, betaX), r.mul(betaY, betaY))
	deltaSq := r.add(r.mul(deltaX, deltaX), r.mul(deltaY, deltaY))

	lhs := r.mul(deltaSq, r.mul(betaV, betaV))
	rhs := r.mul(betaSq, r.mul(deltaV, deltaV))

	return r.sub(lhs, rhs)
}
