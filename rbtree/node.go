package rbtree

import (
	"github.com/dakv/rb-tree/assert"
)

// color represents the color of a node in the red-black tree.
// Black is true so that the zero value of a fresh node is red.
type color bool

const (
	black color = true
	red   color = false
)

// String returns a human-readable representation of the node color.
func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

// tag is the one-letter color marker used by Render.
func (c color) tag() string {
	if c == black {
		return "B"
	}

	return "R"
}

// node is an internal cell of the tree. A nil *node is a terminal: it carries
// no value and counts as black. Each node exclusively owns its two subtrees;
// there are no parent pointers, so every algorithm works top-down and passes
// rebalancing state back up through return values.
type node[T any] struct {
	value T
	color color
	left  *node[T]
	right *node[T]
}

// newNode returns a red leaf. Inserting red never changes black-height.
func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, color: red}
}

// isRed reports whether n is a red internal node. Terminals are black.
func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

// colorOf returns the color of n, treating terminals as black.
func colorOf[T any](n *node[T]) color {
	if n == nil {
		return black
	}

	return n.color
}

// rotateRight lifts the left child of x into x's place and returns it.
//
//	    x            y
//	   / \          / \
//	  y   c   =>   a   x
//	 / \              / \
//	a   b            b   c
//
// Colors are left untouched; callers recolor as their case requires.
//
//nolint:varnamelen,dupword // ASCII diagram
func rotateRight[T any](x *node[T]) *node[T] {
	y := x.left
	assert.True(y != nil, "rbtree: rotateRight on a node without a left child")

	x.left = y.right
	y.right = x

	return y
}

// rotateLeft lifts the right child of x into x's place and returns it.
//
//	  x                y
//	 / \              / \
//	a   y     =>     x   c
//	   / \          / \
//	  b   c        a   b
//
//nolint:varnamelen // ASCII diagram
func rotateLeft[T any](x *node[T]) *node[T] {
	y := x.right
	assert.True(y != nil, "rbtree: rotateLeft on a node without a right child")

	x.right = y.left
	y.left = x

	return y
}

// clone copies the subtree rooted at n. Values are copied by assignment.
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	return &node[T]{
		value: n.value,
		color: n.color,
		left:  clone(n.left),
		right: clone(n.right),
	}
}
