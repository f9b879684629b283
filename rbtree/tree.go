// Package rbtree implements a red-black tree ordered by an injected comparator.
//
// The tree is the ordering engine behind the set, maps and queue packages.
// Nodes own their children outright and keep no parent pointers: insertion
// and removal are recursive functions that take a subtree, rebuild it and hand
// a rebalancing signal back to their caller.
//
// After every public operation the tree satisfies:
//  1. No red node has a red child.
//  2. Every path from a node to a terminal below it crosses the same number of black nodes.
//  3. The root is black.
//  4. An in-order walk is strictly ascending under the comparator.
//
// Point operations are O(log n). A Tree is not safe for concurrent use; wrap it
// (see set.NewThreadSafe and maps.NewThreadSafe) when it is shared.
package rbtree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// Tree is a red-black tree of T. The zero value is not usable; call New.
type Tree[T any] struct {
	root      *node[T]
	contained int
	cmp       compare.Func[T]
}

// New returns an empty tree ordered by cmp.
func New[T any](cmp compare.Func[T]) *Tree[T] {
	if cmp == nil {
		panic("rbtree: nil comparator")
	}

	return &Tree[T]{cmp: cmp}
}

// NewOrdered returns an empty tree using the natural order of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(compare.Natural[T])
}

// From returns a tree ordered by cmp holding values. Later duplicates replace
// earlier ones.
func From[T any](cmp compare.Func[T], values ...T) *Tree[T] {
	t := New(cmp)

	for _, v := range values {
		t.Replace(v)
	}

	return t
}

// Comparator returns the order this tree was built with.
func (t *Tree[T]) Comparator() compare.Func[T] {
	return t.cmp
}

// Replace inserts value, or overwrites the stored value comparing Equal to it.
// It returns the overwritten value, or None if value was new.
func (t *Tree[T]) Replace(value T) optional.Value[T] {
	var prev optional.Value[T]

	t.root, prev, _ = insert(t.root, value, t.cmp)
	t.root.color = black

	if prev.Empty() {
		t.contained++
	}

	return prev
}

// Insert stores value and reports whether it was not already present.
// An existing Equal value is overwritten either way.
func (t *Tree[T]) Insert(value T) bool {
	return t.Replace(value).Empty()
}

// Take removes the value comparing Equal to probe and returns it.
// A missing value is not an error: the result is None and the tree is unchanged.
func (t *Tree[T]) Take(probe T) optional.Value[T] {
	var removed optional.Value[T]

	t.root, removed, _ = remove(t.root, probe, t.cmp)
	t.paintRoot()

	if removed.NonEmpty() {
		t.contained--
	}

	return removed
}

// Remove deletes the value comparing Equal to probe and reports whether there was one.
func (t *Tree[T]) Remove(probe T) bool {
	return t.Take(probe).NonEmpty()
}

// Pop removes and returns the smallest value, or None if the tree is empty.
func (t *Tree[T]) Pop() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	var minimum T

	t.root, minimum, _ = removeMin(t.root)
	t.paintRoot()
	t.contained--

	return optional.Some(minimum)
}

// PopMax removes and returns the largest value, or None if the tree is empty.
func (t *Tree[T]) PopMax() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	var maximum T

	t.root, maximum, _ = removeMax(t.root)
	t.paintRoot()
	t.contained--

	return optional.Some(maximum)
}

// Min returns the smallest value without removing it.
func (t *Tree[T]) Min() optional.Value[T] {
	return valueOf(leftmost(t.root))
}

// Max returns the largest value without removing it.
func (t *Tree[T]) Max() optional.Value[T] {
	return valueOf(rightmost(t.root))
}

// Get returns the stored value comparing Equal to probe.
func (t *Tree[T]) Get(probe T) optional.Value[T] {
	return valueOf(search(t.root, probe, t.cmp))
}

// Contains reports whether a value comparing Equal to probe is stored.
func (t *Tree[T]) Contains(probe T) bool {
	return search(t.root, probe, t.cmp) != nil
}

// Update calls fn with a pointer to the stored value comparing Equal to probe
// and reports whether one was found. fn may change the value in place but must
// not change how it compares; doing so breaks the ordering of the tree.
func (t *Tree[T]) Update(probe T, fn func(*T)) bool {
	n := search(t.root, probe, t.cmp)
	if n == nil {
		return false
	}

	fn(&n.value)

	return true
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int {
	return t.contained
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.contained == 0
}

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.contained = 0
}

// Clone returns an independent copy with the same shape, colors and comparator.
// Values are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:      clone(t.root),
		contained: t.contained,
		cmp:       t.cmp,
	}
}

// Ordered returns a snapshot of every value in ascending order.
func (t *Tree[T]) Ordered() []T {
	return collect(t.root, make([]T, 0, t.contained))
}

// Iter returns a lazy cursor over the values in ascending order.
func (t *Tree[T]) Iter() *Cursor[T] {
	return newCursor(t.root, t.contained, false)
}

// All returns an iterator over the values in ascending order:
//
//	for v := range tree.All() { ... }
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		seq(t.Iter())(yield)
	}
}

// Backward returns an iterator over the values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		seq(newCursor(t.root, t.contained, true))(yield)
	}
}

// Drain returns an iterator that pops values in ascending order. Values not
// reached because the loop stopped early stay in the tree.
func (t *Tree[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := t.Pop().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// String returns the values in ascending order, e.g. "[1 2 3]".
func (t *Tree[T]) String() string {
	return fmt.Sprint(t.Ordered())
}

func (t *Tree[T]) paintRoot() {
	if t.root != nil {
		t.root.color = black
	}
}

func valueOf[T any](n *node[T]) optional.Value[T] {
	if n == nil {
		return optional.None[T]()
	}

	return optional.Some(n.value)
}
