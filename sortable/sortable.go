// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/dakv/rb-tree/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the comparator for any Sortable type. It lets types that define
// their own Equals and LessThan be stored in a tree without writing a Func.
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.LessThan(b):
		return compare.Less
	case a.Equals(b):
		return compare.Equal
	default:
		return compare.Greater
	}
}
