package rbtree

import (
	"github.com/dakv/rb-tree/assert"
	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// remove deletes the value comparing Equal to probe from the subtree rooted at h
// and returns the new subtree root.
//
// short reports a double-black deficiency: the returned subtree has one black
// node fewer on every path than before, and the caller must repair it with
// fixLeftShort or fixRightShort.
//
// A node with two children is not unlinked. Its value is overwritten with its
// in-order successor and the successor's node, which has at most one child,
// is removed instead.
func remove[T any](h *node[T], probe T, cmp compare.Func[T]) (_ *node[T], removed optional.Value[T], short bool) {
	if h == nil {
		return nil, optional.None[T](), false
	}

	switch o := cmp(probe, h.value); {
	case o < 0:
		h.left, removed, short = remove(h.left, probe, cmp)
		if short {
			h, short = fixLeftShort(h)
		}
	case o > 0:
		h.right, removed, short = remove(h.right, probe, cmp)
		if short {
			h, short = fixRightShort(h)
		}
	default:
		removed = optional.Some(h.value)

		if h.left == nil || h.right == nil {
			h, short = splice(h)

			return h, removed, short
		}

		h.right, h.value, short = removeMin(h.right)
		if short {
			h, short = fixRightShort(h)
		}
	}

	return h, removed, short
}

// removeMin unlinks the leftmost node of the non-empty subtree h and returns
// its value. It follows the left spine without consulting the comparator.
func removeMin[T any](h *node[T]) (_ *node[T], minimum T, short bool) {
	if h.left == nil {
		minimum = h.value
		h, short = splice(h)

		return h, minimum, short
	}

	h.left, minimum, short = removeMin(h.left)
	if short {
		h, short = fixLeftShort(h)
	}

	return h, minimum, short
}

// removeMax is the mirror image of removeMin.
func removeMax[T any](h *node[T]) (_ *node[T], maximum T, short bool) {
	if h.right == nil {
		maximum = h.value
		h, short = splice(h)

		return h, maximum, short
	}

	h.right, maximum, short = removeMax(h.right)
	if short {
		h, short = fixRightShort(h)
	}

	return h, maximum, short
}

// splice replaces h, which has at most one child, with that child.
//
// Dropping a red node costs nothing. Dropping a black node over a red child is
// absorbed by painting the child black. Dropping a black leaf leaves the path
// one black short, which is reported to the caller.
func splice[T any](h *node[T]) (*node[T], bool) {
	child := h.left
	if child == nil {
		child = h.right
	}

	if h.color == red {
		return child, false
	}

	if isRed(child) {
		child.color = black

		return child, false
	}

	return child, true
}

// fixLeftShort repairs h after its left subtree lost one unit of black-height.
// It returns the new subtree root and whether the deficiency moved up to the
// caller.
//
// With w = h.right (the sibling, never a terminal since its side is taller):
//
//	case 1: w red                          rotate h left, swap colors, continue at h (now red)
//	case 2: w black, both children black   paint w red; a red h absorbs, a black h propagates
//	case 3: w black, near child red        rotate w right so the red child is on the far side
//	case 4: w black, far child red         rotate h left, w takes h's color, h and the far child black
//
//nolint:varnamelen // Standard red-black tree variable names
func fixLeftShort[T any](h *node[T]) (*node[T], bool) {
	w := h.right
	assert.True(w != nil, "rbtree: double-black with a terminal sibling")

	if w.color == red {
		top := rotateLeft(h)
		top.color = black
		h.color = red

		var short bool

		top.left, short = fixLeftShort(h)

		return top, short
	}

	if !isRed(w.left) && !isRed(w.right) {
		w.color = red

		if h.color == red {
			h.color = black

			return h, false
		}

		return h, true
	}

	if !isRed(w.right) {
		h.right = rotateRight(w)
		h.right.color = black
		w.color = red
	}

	top := rotateLeft(h)
	top.color = h.color
	h.color = black
	top.right.color = black

	return top, false
}

// fixRightShort is the mirror image of fixLeftShort.
//
//nolint:varnamelen // Standard red-black tree variable names
func fixRightShort[T any](h *node[T]) (*node[T], bool) {
	w := h.left
	assert.True(w != nil, "rbtree: double-black with a terminal sibling")

	if w.color == red {
		top := rotateRight(h)
		top.color = black
		h.color = red

		var short bool

		top.right, short = fixRightShort(h)

		return top, short
	}

	if !isRed(w.left) && !isRed(w.right) {
		w.color = red

		if h.color == red {
			h.color = black

			return h, false
		}

		return h, true
	}

	if !isRed(w.left) {
		h.left = rotateLeft(w)
		h.left.color = black
		w.color = red
	}

	top := rotateRight(h)
	top.color = h.color
	h.color = black
	top.left.color = black

	return top, false
}
