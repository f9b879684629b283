package rbtree

import (
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/zero"
)

// collect appends the values of the subtree h to out in ascending order.
func collect[T any](h *node[T], out []T) []T {
	if h == nil {
		return out
	}

	out = collect(h.left, out)
	out = append(out, h.value)

	return collect(h.right, out)
}

// search returns the node holding the value comparing Equal to probe, or nil.
func search[T any](h *node[T], probe T, cmp compare.Func[T]) *node[T] {
	for h != nil {
		switch o := cmp(probe, h.value); {
		case o < 0:
			h = h.left
		case o > 0:
			h = h.right
		default:
			return h
		}
	}

	return nil
}

// leftmost returns the smallest node of h, or nil for a terminal.
func leftmost[T any](h *node[T]) *node[T] {
	if h == nil {
		return nil
	}

	for h.left != nil {
		h = h.left
	}

	return h
}

// rightmost returns the largest node of h, or nil for a terminal.
func rightmost[T any](h *node[T]) *node[T] {
	if h == nil {
		return nil
	}

	for h.right != nil {
		h = h.right
	}

	return h
}

// Cursor walks a tree in order one value at a time. It keeps the nodes of the
// current left spine whose value and right subtree are still pending, so each
// step costs amortized O(1) and at most O(log n).
//
// A Cursor cannot be rewound; start a new one with Tree.Iter. Mutating the
// tree while a Cursor is live gives unspecified (but memory-safe) results.
type Cursor[T any] struct {
	pending   []*node[T]
	remaining int
	reverse   bool
}

func newCursor[T any](root *node[T], size int, reverse bool) *Cursor[T] {
	c := &Cursor[T]{
		remaining: size,
		reverse:   reverse,
	}

	c.descend(root)

	return c
}

// descend pushes n and its chain of children toward the next value.
func (c *Cursor[T]) descend(n *node[T]) {
	for n != nil {
		c.pending = append(c.pending, n)

		if c.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Next returns the next value and true, or the zero value and false once the
// traversal is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	if len(c.pending) == 0 {
		return zero.Value[T](), false
	}

	top := c.pending[len(c.pending)-1]
	c.pending[len(c.pending)-1] = nil
	c.pending = c.pending[:len(c.pending)-1]

	if c.reverse {
		c.descend(top.left)
	} else {
		c.descend(top.right)
	}

	if c.remaining > 0 {
		c.remaining--
	}

	return top.value, true
}

// Remaining returns how many values the cursor has yet to produce.
func (c *Cursor[T]) Remaining() int {
	return c.remaining
}

// seq adapts a cursor to a range-over-func iterator.
func seq[T any](c *Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
