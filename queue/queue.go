// Package queue provides a priority queue on top of the red-black tree in
// package rbtree.
//
// The front of the queue is the smallest element under the queue's comparator.
// Elements comparing Equal are not kept twice: pushing one replaces the queued
// element, so give the comparator a tiebreak when equal priorities must coexist.
package queue

import (
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
	"github.com/dakv/rb-tree/rbtree"
)

// Queue is a priority queue. It is not safe for concurrent use.
type Queue[T any] struct {
	tree *rbtree.Tree[T]
}

// New creates an empty queue ordered by cmp.
func New[T any](cmp compare.Func[T]) *Queue[T] {
	return &Queue[T]{tree: rbtree.New(cmp)}
}

// NewC creates an empty queue from a comparator returning a negative number,
// zero or a positive number, like the cmp package. Only the sign matters.
//
// A comparator of func(a, b int) int { return b - a } pops the largest element first.
func NewC[T any](cmp func(a, b T) int) *Queue[T] {
	return New(compare.Int(cmp))
}

// Of creates a queue ordered by cmp holding elements.
func Of[T any](cmp compare.Func[T], elements ...T) *Queue[T] {
	q := New(cmp)
	for _, e := range elements {
		q.Push(e)
	}

	return q
}

// Push adds element and reports whether it was new. An element comparing
// Equal is replaced.
func (q *Queue[T]) Push(element T) bool {
	return q.tree.Insert(element)
}

// Insert is Push.
func (q *Queue[T]) Insert(element T) bool {
	return q.Push(element)
}

// Replace adds element and returns the one it displaced.
func (q *Queue[T]) Replace(element T) optional.Value[T] {
	return q.tree.Replace(element)
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() optional.Value[T] {
	return q.tree.Pop()
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() optional.Value[T] {
	return q.tree.Min()
}

// Back returns the element that would be popped last.
func (q *Queue[T]) Back() optional.Value[T] {
	return q.tree.Max()
}

// Remove takes the element comparing Equal to element out of the queue.
func (q *Queue[T]) Remove(element T) optional.Value[T] {
	return q.tree.Take(element)
}

// Contains reports whether an element comparing Equal to element is queued.
func (q *Queue[T]) Contains(element T) bool {
	return q.tree.Contains(element)
}

func (q *Queue[T]) Len() int {
	return q.tree.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.tree.IsEmpty()
}

// Ordered returns the queued elements front first.
func (q *Queue[T]) Ordered() []T {
	return q.tree.Ordered()
}

// Seq iterates front to back without removing anything.
func (q *Queue[T]) Seq() iter.Seq[T] {
	return q.tree.All()
}

// Drain pops elements front first while the loop runs.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return q.tree.Drain()
}

func (q *Queue[T]) Clear() {
	q.tree.Clear()
}

func (q *Queue[T]) String() string {
	return q.tree.String()
}

func (q *Queue[T]) Render() string {
	return q.tree.Render()
}
