// arithmetic.go — outward-rounded interval Add, Sub, Mul, and the
// sign/ordering predicates built on them.
package interval

// Add returns [a,b] + [c,d] with both bounds rounded outward:
// lower = floor(a+c), upper = ceil(b+d).
func Add[T Real](x, y Interval[T]) Interval[T] {
	release := acquireRounding()
	defer release()
	recordOp[T]()

	lo := bumpDown(x.Lo + y.Lo)
	hi := bumpUp(x.Hi + y.Hi)
	return Interval[T]{Lo: lo, Hi: hi}
}

// Sub returns [a,b] - [c,d] with both bounds rounded outward:
// lower = floor(a-d), upper = ceil(b-c).
func Sub[T Real](x, y Interval[T]) Interval[T] {
	release := acquireRounding()
	defer release()
	recordOp[T]()

	lo := bumpDown(x.Lo - y.Hi)
	hi := bumpUp(x.Hi - y.Lo)
	return Interval[T]{Lo: lo, Hi: hi}
}

// Mul returns [a,b] x [c,d]: the four cross-products are evaluated
// under both roundings, then the lower bound is the min of the four
// down-rounded products and the upper bound the max of the four
// up-rounded products.
func Mul[T Real](x, y Interval[T]) Interval[T] {
	release := acquireRounding()
	defer release()
	recordOp[T]()

	downs := [4]T{
		bumpDown(x.Lo * y.Lo),
		bumpDown(x.Lo * y.Hi),
		bumpDown(x.Hi * y.Lo),
		bumpDown(x.Hi * y.Hi),
	}
	ups := [4]T{
		bumpUp(x.Lo * y.Lo),
		bumpUp(x.Lo * y.Hi),
		bumpUp(x.Hi * y.Lo),
		bumpUp(x.Hi * y.Hi),
	}

	lo := downs[0]
	for _, d := range downs[1:] {
		if d < lo {
			lo = d
		}
	}
	hi := ups[0]
	for _, u := range ups[1:] {
		if u > hi {
			hi = u
		}
	}
	return Interval[T]{Lo: lo, Hi: hi}
}

// Neg returns -[a,b] = [-b,-a]. Negation is exact (no rounding needed)
// since IEEE-754 negation never changes magnitude.
func Neg[T Real](x Interval[T]) Interval[T] {
	recordOp[T]()
	return Interval[T]{Lo: -x.Hi, Hi: -x.Lo}
}

// Sign returns -1 if Hi < 0, +1 if Lo > 0, 0 if Lo == Hi == 0, and
// ErrIndeterminate otherwise (the bounds straddle zero without both
// being exactly zero).
func Sign[T Real](x Interval[T]) (int, error) {
	var zero T
	switch {
	case x.Hi < zero:
		return -1, nil
	case x.Lo > zero:
		return 1, nil
	case x.Lo == zero && x.Hi == zero:
		return 0, nil
	default:
		recordIndeterminate[T]()
		return 0, ErrIndeterminate
	}
}

// Less reports a < b: true iff Hi(a) < Lo(b), false iff Lo(a) >= Hi(b),
// and ErrIndeterminate otherwise.
func Less[T Real](a, b Interval[T]) (bool, error) {
	switch {
	case a.Hi < b.Lo:
		return true, nil
	case a.Lo >= b.Hi:
		return false, nil
	default:
		recordIndeterminate[T]()
		return false, ErrIndeterminate
	}
}
