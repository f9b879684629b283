// Package compare provides the ordering primitives used by the red-black tree:
// a three-way Ordering, the injectable comparator Func, and adapters that
// turn natural orders, C-style integer comparisons, key projections and
// locale rules into comparators.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
