// predicates.go — the three robust predicates: Orient,
// SideOfOrientedCircle, and PreferredDirection. Each runs the filter
// pattern described in doc.go.
package kernel

import "github.com/lvlath-labs/pddelaunay/interval"

// Orient determines how point c is positioned relative to the
// directed line through a and b (in that order). Returns an
// Orientation.
// Precondition: a != b.
func Orient[T Real](a, b, c Point[T]) Orientation {
	recordTotal[T](predOrientation)

	ivr := intervalRing[T]()
	ivDet := orientationDet(ivr,
		toIvPoint(a.X), toIvPoint(a.Y),
		toIvPoint(b.X), toIvPoint(b.Y),
		toIvPoint(c.X), toIvPoint(c.Y),
	)
	if sign, err := interval.Sign(ivDet); err == nil {
		return Orientation(sign)
	}

	recordExact[T](predOrientation)
	rDet := orientationDet(exactRing,
		toRat(a.X), toRat(a.Y),
		toRat(b.X), toRat(b.Y),
		toRat(c.X), toRat(c.Y),
	)
	return Orientation(rDet.Sign())
}

// SideOfOrientedCircle determines how point d is positioned relative to
// the oriented circle through a, b, c (in that order).
// Precondition: a, b, c are not collinear and are in CCW order.
func SideOfOrientedCircle[T Real](a, b, c, d Point[T]) OrientedSide {
	recordTotal[T](predInCircle)

	ivr := intervalRing[T]()
	ivDet := inCircleDet(ivr,
		toIvPoint(a.X), toIvPoint(a.Y),
		toIvPoint(b.X), toIvPoint(b.Y),
		toIvPoint(c.X), toIvPoint(c.Y),
		toIvPoint(d.X), toIvPoint(d.Y),
	)
	if sign, err := interval.Sign(ivDet); err == nil {
		return OrientedSide(sign)
	}

	recordExact[T](predInCircle)
	rDet := inCircleDet(exactRing,
		toRat(a.X), toRat(a.Y),
		toRat(b.X), toRat(b.Y),
		toRat(c.X), toRat(c.Y),
		toRat(d.X), toRat(d.Y),
	)
	return OrientedSide(rDet.Sign())
}

// PreferredDirection compares how closely segment ab aligns with
// direction v versus segment cd. Returns +1 if ab is more aligned with
// v than cd, 0 if equally aligned, -1 if less aligned.
// Preconditions: a != b, c != d, v is not the zero vector.
func PreferredDirection[T Real](a, b, c, d Point[T], v Vector[T]) int {
	recordTotal[T](predPreferredDirection)

	ivr := intervalRing[T]()
	ivDet := preferredDirectionDet(ivr,
		toIvPoint(a.X), toIvPoint(a.Y),
		toIvPoint(b.X), toIvPoint(b.Y),
		toIvPoint(c.X), toIvPoint(c.Y),
		toIvPoint(d.X), toIvPoint(d.Y),
		toIvPoint(v.X), toIvPoint(v.Y),
	)
	if sign, err := interval.Sign(ivDet); err == nil {
		return sign
	}

	recordExact[T](predPreferredDirection)
	rDet := preferredDirectionDet(exactRing,
		toRat(a.X), toRat(a.Y),
		toRat(b.X), toRat(b.Y),
		toRat(c.X), toRat(c.Y),
		toRat(d.X), toRat(d.Y),
		toRat(v.X), toRat(v.Y),
	)
	return rDet.Sign()
}
