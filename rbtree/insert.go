package rbtree

import (
	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// insert places value in the subtree rooted at h and returns the new subtree root.
//
// prev holds the value that compared Equal and was replaced in place, if any.
// Replacement never changes structure or colors.
//
// fix reports that the returned root is red, so the caller has to look at it:
// if the caller is red too the pair is handed one more level up, and the black
// grandparent resolves it in balanceLeft / balanceRight.
func insert[T any](h *node[T], value T, cmp compare.Func[T]) (_ *node[T], prev optional.Value[T], fix bool) {
	if h == nil {
		return newNode(value), optional.None[T](), true
	}

	switch o := cmp(value, h.value); {
	case o < 0:
		h.left, prev, fix = insert(h.left, value, cmp)
		if fix {
			h, fix = balanceLeft(h)
		}
	case o > 0:
		h.right, prev, fix = insert(h.right, value, cmp)
		if fix {
			h, fix = balanceRight(h)
		}
	default:
		old := h.value
		h.value = value

		return h, optional.Some(old), false
	}

	return h, prev, fix
}

// balanceLeft resolves a possible red-red conflict below h after an insertion
// into its left subtree, whose root is known to be red.
//
// The cases, with c = h.left and u = h.right (the uncle of c's children):
//
//	h red                       the conflict (if any) is between h and c; h's parent fixes it
//	c has no red child          nothing to do
//	u red                       recolor: h red, c and u black, recheck above h
//	c.right red (inner)         rotate c left to get the outer shape, then
//	c.left red (outer)          rotate h right; the new top is black, h red; done
func balanceLeft[T any](h *node[T]) (*node[T], bool) {
	if h.color == red {
		return h, true
	}

	c := h.left

	if !isRed(c.left) && !isRed(c.right) {
		return h, false
	}

	if isRed(h.right) {
		h.color = red
		c.color = black
		h.right.color = black

		return h, true
	}

	if !isRed(c.left) {
		h.left = rotateLeft(c)
	}

	top := rotateRight(h)
	top.color = black
	h.color = red

	return top, false
}

// balanceRight is the mirror image of balanceLeft.
func balanceRight[T any](h *node[T]) (*node[T], bool) {
	if h.color == red {
		return h, true
	}

	c := h.right

	if !isRed(c.left) && !isRed(c.right) {
		return h, false
	}

	if isRed(h.left) {
		h.color = red
		c.color = black
		h.left.color = black

		return h, true
	}

	if !isRed(c.right) {
		h.right = rotateRight(c)
	}

	top := rotateLeft(h)
	top.color = black
	h.color = red

	return top, false
}
