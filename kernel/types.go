package kernel

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lvlath-labs/pddelaunay/interval"
)

// Real re-exports interval.Real so callers need not import both
// packages to name the kernel's scalar constraint.
type Real = interval.Real

// Point is an ordered pair (X, Y) of real scalars. Equality is
// bitwise.
type Point[T Real] struct {
	X, Y T
}

// Vector is an ordered pair (X, Y); semantically a direction, never
// owning a location.
type Vector[T Real] struct {
	X, Y T
}

// Sub returns the vector b - a.
func Sub[T Real](b, a Point[T]) Vector[T] {
	return Vector[T]{X: b.X - a.X, Y: b.Y - a.Y}
}

// PointToR2 converts a float64 Point to a gonum spatial/r2.Vec, used by
// mesh.WriteOFF to format vertex coordinates. It is never used inside
// an exact-sign determinant — see DESIGN.md. Go generics cannot
// specialize a method to one type argument, so this is a plain
// function rather than a method on Point[float64].
func PointToR2(p Point[float64]) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// PointFromR2 is the inverse of PointToR2.
func PointFromR2(v r2.Vec) Point[float64] {
	return Point[float64]{X: v.X, Y: v.Y}
}

// Orientation is the sign of the orientation predicate.
type Orientation int

const (
	RightTurn Orientation = -1
	Collinear Orientation = 0
	LeftTurn  Orientation = 1
)

// OrientedSide is the sign of the side-of-oriented-circle predicate.
type OrientedSide int

const (
	OnNegativeSide OrientedSide = -1
	OnBoundary     OrientedSide = 0
	OnPositiveSide OrientedSide = 1
)
