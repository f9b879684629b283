package compare

import "cmp"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "Less", "Equal" or "Greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}

// Reverse flips Less and Greater. Equal stays Equal.
func (o Ordering) Reverse() Ordering {
	return -o
}

// FromInt normalizes a C-style comparison result (negative, zero or positive)
// into an Ordering.
func FromInt(result int) Ordering {
	switch {
	case result < 0:
		return Less
	case result > 0:
		return Greater
	default:
		return Equal
	}
}

// Func is a total order over T. Implementations must be pure, asymmetric and
// transitive. This is a caller contract: the tree never checks it, and an
// inconsistent Func only produces a misordered (never a corrupted) tree.
type Func[T any] func(a, b T) Ordering

// Compare invokes the comparator. It exists so a Func reads naturally at call sites.
func (f Func[T]) Compare(a, b T) Ordering {
	return f(a, b)
}

// Less reports whether a sorts strictly before b.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) == Less
}

// Natural is the comparator for types with an intrinsic order.
// NaN sorts before every other float, as with cmp.Compare.
func Natural[T cmp.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// Int adapts a C-style comparison function (negative when a < b, zero when
// equal, positive when a > b) into a Func.
//
// Example:
//
//	byDistance := compare.Int(func(a, b Point) int { return a.D - b.D })
func Int[T any](f func(a, b T) int) Func[T] {
	return func(a, b T) Ordering {
		return FromInt(f(a, b))
	}
}

// Reverse returns a comparator ordering values in the opposite direction of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) Ordering {
		return f(b, a)
	}
}

// By orders values of T by a projected key. The map facade uses this to
// compare entries on their key alone.
func By[T, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) Ordering {
		return f(key(a), key(b))
	}
}

// Then orders by first, breaking ties with second.
func Then[T any](first, second Func[T]) Func[T] {
	return func(a, b T) Ordering {
		if o := first(a, b); o != Equal {
			return o
		}

		return second(a, b)
	}
}
