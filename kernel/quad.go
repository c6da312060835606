// quad.go — higher-level tests composed from the three predicates,
// with no extra numerical subtlety.
package kernel

// IsStrictlyConvexQuad reports whether the quadrilateral a, b, c, d
// (given in CCW order) is strictly convex: every one of the four
// consecutive triples is a left turn.
func IsStrictlyConvexQuad[T Real](a, b, c, d Point[T]) bool {
	return Orient(a, b, c) == LeftTurn &&
		Orient(b, c, d) == LeftTurn &&
		Orient(c, d, a) == LeftTurn &&
		Orient(d, a, b) == LeftTurn
}

// IsLocallyDelaunayEdge tests the flippable edge with endpoints a, c
// and incident faces (a,b,c) and (a,c,d) (both CCW) for the classical
// Delaunay property: d does not lie strictly inside the circumcircle
// of a, b, c.
func IsLocallyDelaunayEdge[T Real](a, b, c, d Point[T]) bool {
	return SideOfOrientedCircle(a, b, c, d) != OnPositiveSide
}

// IsLocallyPDDelaunayEdge is the preferred-direction variant of
// IsLocallyDelaunayEdge. u is the primary preferred direction, v the
// tie-breaker.
//
// Argument convention: endpoints of the edge under test are the first
// and third arguments (a, c); the two opposite vertices are the second
// and fourth (b, d).
//
// On a cocircular tie, the two candidates are the two diagonals of the
// quadrilateral (a,b,c,d): the edge under test, a-c, and the edge a
// flip would produce, b-d. The tie is resolved by asking which
// diagonal is more aligned with u (then v), via
// PreferredDirection(a, c, b, d, *) — comparing segment a-c against
// segment b-d directly. See DESIGN.md for why this reading of the
// tie-break (comparing diagonals) was chosen over comparing the quad's
// sides bc and ad, which degenerates to zero for point-symmetric
// quadrilaterals such as a square.
func IsLocallyPDDelaunayEdge[T Real](a, b, c, d Point[T], u, v Vector[T]) bool {
	switch SideOfOrientedCircle(a, b, c, d) {
	case OnNegativeSide:
		return true
	case OnPositiveSide:
		return false
	default: // OnBoundary: four cocircular points, break the tie
		switch p := PreferredDirection(a, c, b, d, u); {
		case p > 0:
			return true
		case p < 0:
			return false
		default:
			return PreferredDirection(a, c, b, d, v) > 0
		}
	}
}
