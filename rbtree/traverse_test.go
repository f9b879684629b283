package rbtree

import (
	"testing"

	"github.com/dakv/rb-tree/compare"
	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	t.Run("steps in order", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 2, 3, 1, 4)
		cur := tree.Iter()

		assert.Equal(t, 4, cur.Remaining())

		for expected := 1; expected <= 4; expected++ {
			v, ok := cur.Next()
			assert.True(t, ok)
			assert.Equal(t, expected, v)
		}

		assert.Equal(t, 0, cur.Remaining())

		_, ok := cur.Next()
		assert.False(t, ok)

		_, ok = cur.Next()
		assert.False(t, ok, "an exhausted cursor stays exhausted")
	})

	t.Run("new cursor restarts", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 10, 20)

		first := tree.Iter()
		first.Next()

		second := tree.Iter()
		v, _ := second.Next()

		assert.Equal(t, 10, v)
	})

	t.Run("pending stack stays logarithmic", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()
		for i := range 1024 {
			tree.Insert(i)
		}

		cur := tree.Iter()
		deepest := 0

		for {
			deepest = max(deepest, len(cur.pending))
			if _, ok := cur.Next(); !ok {
				break
			}
		}

		// A red-black tree of n nodes is at most 2*log2(n+1) deep.
		assert.LessOrEqual(t, deepest, 2*11)
	})
}

func TestTree_All(t *testing.T) {
	t.Parallel()

	tree := From(compare.Natural[int], 5, 3, 8, 1, 4, 7, 9)

	var got []int
	for v := range tree.All() {
		got = append(got, v)
	}

	assert.Equal(t, tree.Ordered(), got)

	t.Run("early stop", func(t *testing.T) {
		t.Parallel()

		var first []int

		for v := range tree.All() {
			if v > 4 {
				break
			}

			first = append(first, v)
		}

		assert.Equal(t, []int{1, 3, 4}, first)
	})
}

func TestTree_Backward(t *testing.T) {
	t.Parallel()

	tree := From(compare.Natural[int], 5, 3, 8, 1)

	var got []int
	for v := range tree.Backward() {
		got = append(got, v)
	}

	assert.Equal(t, []int{8, 5, 3, 1}, got)
}

func TestTree_Drain(t *testing.T) {
	t.Parallel()

	t.Run("drains everything", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 3, 1, 2)

		var got []int
		for v := range tree.Drain() {
			got = append(got, v)
		}

		assert.Equal(t, []int{1, 2, 3}, got)
		assert.True(t, tree.IsEmpty())
	})

	t.Run("stopping keeps the rest", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 3, 1, 2)

		for v := range tree.Drain() {
			if v == 1 {
				break
			}
		}

		assert.Equal(t, []int{2, 3}, tree.Ordered())
		requireValid(t, tree)
	})
}

func TestRotations(t *testing.T) {
	t.Parallel()

	//     4          2
	//    / \        / \
	//   2   5  =>  1   4
	//  / \            / \
	// 1   3          3   5
	build := func() *node[int] {
		return &node[int]{
			value: 4,
			left: &node[int]{
				value: 2,
				left:  &node[int]{value: 1},
				right: &node[int]{value: 3},
			},
			right: &node[int]{value: 5},
		}
	}

	right := rotateRight(build())
	assert.Equal(t, 2, right.value)
	assert.Equal(t, 4, right.right.value)
	assert.Equal(t, 3, right.right.left.value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(right, nil))

	left := rotateLeft(right)
	assert.Equal(t, 4, left.value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(left, nil))

	assert.Panics(t, func() { rotateRight(&node[int]{value: 1}) })
	assert.Panics(t, func() { rotateLeft(&node[int]{value: 1}) })
}
