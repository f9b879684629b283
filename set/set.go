// Package set provides an ordered set backed by a red-black tree.
//
// Elements are kept unique and sorted under the comparator given at
// construction. Adding an element that compares Equal to a stored one replaces
// it rather than duplicating it.
package set

import (
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// OrderedSet is a sorted collection of unique elements.
//
// Thread-safety: the red-black tree implementation is not safe for concurrent
// use. Wrap it with NewThreadSafe when it is shared between goroutines.
//
//nolint:interfacebloat // Set algebra plus the four tree primitives
type OrderedSet[T any] interface {
	// Add inserts element and reports whether it was new. An existing element
	// comparing Equal is replaced either way.
	Add(element T) bool

	// AddAll adds every element and returns how many were new.
	AddAll(elements ...T) int

	// Replace inserts element and returns the stored element it replaced, if any.
	Replace(element T) optional.Value[T]

	// Remove deletes the element comparing Equal to element and reports whether one existed.
	Remove(element T) bool

	// Take deletes and returns the element comparing Equal to element.
	Take(element T) optional.Value[T]

	// Contains reports whether an element comparing Equal to element is stored.
	Contains(element T) bool

	// Get returns the stored element comparing Equal to element.
	Get(element T) optional.Value[T]

	// Pop removes and returns the smallest element.
	Pop() optional.Value[T]

	// First returns the smallest element without removing it.
	First() optional.Value[T]

	// Last returns the largest element without removing it.
	Last() optional.Value[T]

	// Clear removes all elements.
	Clear()

	// Size returns the number of elements.
	Size() int

	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool

	// Entries returns the elements in ascending order.
	Entries() []T

	// Seq iterates the elements in ascending order.
	Seq() iter.Seq[T]

	// Drain pops elements in ascending order while the loop runs.
	Drain() iter.Seq[T]

	// Union returns a new set with the elements of both sets. Where both hold
	// Equal elements, the one from other wins.
	Union(other OrderedSet[T]) OrderedSet[T]

	// Intersection returns a new set with the elements of this set also present in other.
	Intersection(other OrderedSet[T]) OrderedSet[T]

	// Difference returns a new set with the elements of this set absent from other.
	Difference(other OrderedSet[T]) OrderedSet[T]

	// IsSubset reports whether every element of this set is present in other.
	IsSubset(other OrderedSet[T]) bool

	// Clone returns an independent copy.
	Clone() OrderedSet[T]

	// Comparator returns the order of the set.
	Comparator() compare.Func[T]

	// String lists the elements in ascending order.
	String() string

	// Render draws the underlying tree level by level with node colors.
	Render() string
}
