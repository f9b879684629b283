package set

import (
	"cmp"
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
	"github.com/dakv/rb-tree/rbtree"
	"github.com/dakv/rb-tree/sortable"
)

// redBlackTreeSet is an OrderedSet that owns one rbtree.Tree keyed by the
// element itself. Every method is a thin translation onto the tree's insert,
// remove, extract-minimum and iterate primitives.
type redBlackTreeSet[T any] struct {
	tree *rbtree.Tree[T]
}

// NewRedBlackTreeSet creates an empty set ordered by cmp.
//
// Example:
//
//	s := set.NewRedBlackTreeSet(func(a, b string) compare.Ordering {
//	    return compare.Natural(len(a), len(b))
//	})
func NewRedBlackTreeSet[T any](cmp compare.Func[T]) OrderedSet[T] {
	return &redBlackTreeSet[T]{tree: rbtree.New(cmp)}
}

// NewOrderedSet creates an empty set using the natural order of T.
func NewOrderedSet[T cmp.Ordered]() OrderedSet[T] {
	return NewRedBlackTreeSet(compare.Natural[T])
}

// NewSortableSet creates an empty set of a type that orders itself.
func NewSortableSet[T sortable.Sortable[T]]() OrderedSet[T] {
	return NewRedBlackTreeSet(sortable.Compare[T])
}

// Of creates a set ordered by cmp holding elements.
func Of[T any](cmp compare.Func[T], elements ...T) OrderedSet[T] {
	s := NewRedBlackTreeSet(cmp)
	s.AddAll(elements...)

	return s
}

func (r *redBlackTreeSet[T]) Add(element T) bool {
	return r.tree.Insert(element)
}

func (r *redBlackTreeSet[T]) AddAll(elements ...T) int {
	added := 0

	for _, element := range elements {
		if r.tree.Insert(element) {
			added++
		}
	}

	return added
}

func (r *redBlackTreeSet[T]) Replace(element T) optional.Value[T] {
	return r.tree.Replace(element)
}

func (r *redBlackTreeSet[T]) Remove(element T) bool {
	return r.tree.Remove(element)
}

func (r *redBlackTreeSet[T]) Take(element T) optional.Value[T] {
	return r.tree.Take(element)
}

func (r *redBlackTreeSet[T]) Contains(element T) bool {
	return r.tree.Contains(element)
}

func (r *redBlackTreeSet[T]) Get(element T) optional.Value[T] {
	return r.tree.Get(element)
}

func (r *redBlackTreeSet[T]) Pop() optional.Value[T] {
	return r.tree.Pop()
}

func (r *redBlackTreeSet[T]) First() optional.Value[T] {
	return r.tree.Min()
}

func (r *redBlackTreeSet[T]) Last() optional.Value[T] {
	return r.tree.Max()
}

// Clear removes all elements from the set. Time complexity: O(1).
func (r *redBlackTreeSet[T]) Clear() {
	r.tree.Clear()
}

// Size returns the cached element count. Time complexity: O(1).
func (r *redBlackTreeSet[T]) Size() int {
	return r.tree.Len()
}

func (r *redBlackTreeSet[T]) IsEmpty() bool {
	return r.tree.IsEmpty()
}

// Entries returns all elements in sorted order, or nil for an empty set.
func (r *redBlackTreeSet[T]) Entries() []T {
	if r.tree.IsEmpty() {
		return nil
	}

	return r.tree.Ordered()
}

// Seq returns an iterator that yields elements in sorted order.
// This enables range-over-func syntax: for element := range set.Seq() { ... }
func (r *redBlackTreeSet[T]) Seq() iter.Seq[T] {
	return r.tree.All()
}

func (r *redBlackTreeSet[T]) Drain() iter.Seq[T] {
	return r.tree.Drain()
}

// Union returns a new set containing all elements from both this set and the other set.
// The result uses this set's comparator. Time complexity: O((n + m) log(n + m)).
func (r *redBlackTreeSet[T]) Union(other OrderedSet[T]) OrderedSet[T] {
	out := &redBlackTreeSet[T]{tree: r.tree.Clone()}

	for element := range other.Seq() {
		out.tree.Replace(element)
	}

	return out
}

// Intersection returns a new set containing only elements that exist in both this set and the other set.
// Time complexity: O(n log m).
func (r *redBlackTreeSet[T]) Intersection(other OrderedSet[T]) OrderedSet[T] {
	out := NewRedBlackTreeSet(r.tree.Comparator())

	for element := range r.tree.All() {
		if other.Contains(element) {
			out.Add(element)
		}
	}

	return out
}

func (r *redBlackTreeSet[T]) Difference(other OrderedSet[T]) OrderedSet[T] {
	out := NewRedBlackTreeSet(r.tree.Comparator())

	for element := range r.tree.All() {
		if !other.Contains(element) {
			out.Add(element)
		}
	}

	return out
}

func (r *redBlackTreeSet[T]) IsSubset(other OrderedSet[T]) bool {
	if r.Size() > other.Size() {
		return false
	}

	for element := range r.tree.All() {
		if !other.Contains(element) {
			return false
		}
	}

	return true
}

// Clone creates a shallow copy of the set with all the same elements.
// Time complexity: O(n).
func (r *redBlackTreeSet[T]) Clone() OrderedSet[T] {
	return &redBlackTreeSet[T]{tree: r.tree.Clone()}
}

func (r *redBlackTreeSet[T]) Comparator() compare.Func[T] {
	return r.tree.Comparator()
}

func (r *redBlackTreeSet[T]) String() string {
	return r.tree.String()
}

func (r *redBlackTreeSet[T]) Render() string {
	return r.tree.Render()
}
