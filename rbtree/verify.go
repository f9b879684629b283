package rbtree

import (
	"errors"
	"fmt"

	commonerrors "github.com/dakv/rb-tree/errors"
)

var (
	// ErrRedRoot means the root is red.
	ErrRedRoot = errors.New("rbtree: red root")

	// ErrRedRed means a red node has a red child.
	ErrRedRed = errors.New("rbtree: red node with red child")

	// ErrBlackHeight means two paths below a node cross different numbers of black nodes.
	ErrBlackHeight = errors.New("rbtree: unequal black height")

	// ErrOrder means the in-order walk is not strictly ascending under the comparator.
	ErrOrder = errors.New("rbtree: values out of order")

	// ErrCount means the cached size disagrees with the number of nodes.
	ErrCount = errors.New("rbtree: size mismatch")
)

// Verify walks the whole tree and reports every broken invariant, joined into
// one error. It returns nil for a healthy tree. Use errors.Is with the Err*
// sentinels to tell the failures apart.
//
// Verify is O(n) and meant for tests and debugging; no public operation calls it.
func (t *Tree[T]) Verify() error {
	errs := &commonerrors.Collection{}

	if isRed(t.root) {
		errs.Add(ErrRedRoot)
	}

	_, count := verifyNode(t.root, errs)
	if count != t.contained {
		errs.Add(fmt.Errorf("%w: cached %d, counted %d", ErrCount, t.contained, count))
	}

	var (
		prev    T
		hasPrev bool
	)

	for v := range t.All() {
		if hasPrev && t.cmp(prev, v) >= 0 {
			errs.Add(fmt.Errorf("%w: %v is not before %v", ErrOrder, prev, v))
		}

		prev, hasPrev = v, true
	}

	return errs.GetError()
}

// verifyNode checks colors and black heights below h. It returns the black
// height of h (terminals count as one) and the number of internal nodes.
func verifyNode[T any](h *node[T], errs *commonerrors.Collection) (blackHeight, count int) {
	if h == nil {
		return 1, 0
	}

	if h.color == red && (isRed(h.left) || isRed(h.right)) {
		errs.Add(fmt.Errorf("%w at %v", ErrRedRed, h.value))
	}

	leftHeight, leftCount := verifyNode(h.left, errs)
	rightHeight, rightCount := verifyNode(h.right, errs)

	if leftHeight != rightHeight {
		errs.Add(fmt.Errorf("%w at %v: left %d, right %d", ErrBlackHeight, h.value, leftHeight, rightHeight))
	}

	blackHeight = max(leftHeight, rightHeight)
	if colorOf(h) == black {
		blackHeight++
	}

	return blackHeight, leftCount + rightCount + 1
}
