// validate.go — startup validation of the preferred-direction pair
// (u, v): neither may be zero, parallel, or orthogonal to the other.
// This runs once at configuration load, not per-predicate-call, so it
// favors exactness (via big.Rat) over filtering for simplicity.
package kernel

import "math/big"

// ValidateDirections checks u and v are nonzero, non-parallel, and
// non-orthogonal to each other.
func ValidateDirections[T Real](u, v Vector[T]) error {
	ux, uy := toRat(u.X), toRat(u.Y)
	vx, vy := toRat(v.X), toRat(v.Y)

	if isZeroRat(ux, uy) {
		return ErrZeroVector
	}
	if isZeroRat(vx, vy) {
		return ErrZeroVector
	}

	// parallel iff cross(u, v) == 0
	cross := ratSub(ratMul(ux, vy), ratMul(uy, vx))
	if cross.Sign() == 0 {
		return ErrParallelVectors
	}

	// orthogonal iff dot(u, v) == 0
	dot := ratAdd(ratMul(ux, vx), ratMul(uy, vy))
	if dot.Sign() == 0 {
		return ErrOrthogonalVectors
	}

	return nil
}

func isZeroRat(x, y *big.Rat) bool {
	return x.Sign() == 0 && y.Sign() == 0
}
