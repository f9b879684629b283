package rbtree

import (
	"testing"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValid[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()

	require.NoError(t, tree.Verify(), tree.Render())
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty tree", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()

		assert.Equal(t, 0, tree.Len())
		assert.True(t, tree.IsEmpty())
		assert.Empty(t, tree.Ordered())
		assert.True(t, tree.Pop().Empty())
		assert.True(t, tree.Min().Empty())
		assert.True(t, tree.Max().Empty())

		count := 0
		for range tree.All() {
			count++
		}

		assert.Zero(t, count)
		assert.Equal(t, "___", tree.Render())
		requireValid(t, tree)
	})

	t.Run("nil comparator panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { New[int](nil) })
	})

	t.Run("from values", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 3, 1, 2, 3)

		assert.Equal(t, 3, tree.Len())
		assert.Equal(t, []int{1, 2, 3}, tree.Ordered())
		requireValid(t, tree)
	})
}

func TestTree_Replace(t *testing.T) {
	t.Parallel()

	t.Run("insert then get", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()

		assert.True(t, tree.Replace(5).Empty())
		assert.Equal(t, optional.Some(5), tree.Get(5))
		assert.True(t, tree.Contains(5))
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("second insert returns the old value", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[string]()

		assert.True(t, tree.Replace("hello").Empty())
		assert.Equal(t, optional.Some("hello"), tree.Replace("hello"))
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("equal value is overwritten in place", func(t *testing.T) {
		t.Parallel()

		type item struct {
			Key   int
			Label string
		}

		tree := New(compare.By(func(i item) int { return i.Key }, compare.Natural[int]))
		tree.Replace(item{Key: 1, Label: "one"})

		prev := tree.Replace(item{Key: 1, Label: "uno"})

		assert.Equal(t, optional.Some(item{Key: 1, Label: "one"}), prev)
		assert.Equal(t, "uno", tree.Get(item{Key: 1}).GetOrPanic().Label)
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("insert reports novelty", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()

		assert.True(t, tree.Insert(1))
		assert.False(t, tree.Insert(1))
		assert.Equal(t, 1, tree.Len())
	})
}

func TestTree_Render(t *testing.T) {
	t.Parallel()

	tree := NewOrdered[int]()
	tree.Insert(2)
	tree.Insert(3)
	tree.Insert(1)
	tree.Insert(4)

	assert.Equal(t, "[1 2 3 4]", tree.String())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t,
		"B:2\n2->B:1 2->B:3\n1->___ 1->___ 3->___ 3->R:4\n4->___ 4->___",
		tree.Render())
}

func TestTree_Take(t *testing.T) {
	t.Parallel()

	t.Run("removes present value", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 4, 2)

		assert.Equal(t, optional.Some(2), tree.Take(2))
		assert.Equal(t, 1, tree.Len())
		assert.True(t, tree.Take(2).Empty())
		requireValid(t, tree)
	})

	t.Run("absent value leaves tree unchanged", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 5, 3, 8, 1, 4)
		before := tree.Render()

		assert.True(t, tree.Take(7).Empty())
		assert.False(t, tree.Remove(100))
		assert.Equal(t, 5, tree.Len())
		assert.Equal(t, before, tree.Render())
	})

	t.Run("remove from empty tree", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()

		assert.False(t, tree.Remove(1))
		assert.Equal(t, 0, tree.Len())
	})

	t.Run("node with two children takes its successor", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 2, 1, 3)

		assert.True(t, tree.Remove(2))
		assert.Equal(t, []int{1, 3}, tree.Ordered())
		assert.Equal(t, "B:3\n3->R:1 3->___\n1->___ 1->___", tree.Render())
		requireValid(t, tree)
	})

	t.Run("removing every value in insertion order", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()
		for i := range 64 {
			tree.Insert(i)
		}

		for i := range 64 {
			require.Equal(t, optional.Some(i), tree.Take(i))
			requireValid(t, tree)
		}

		assert.True(t, tree.IsEmpty())
	})

	t.Run("removing every value in reverse order", func(t *testing.T) {
		t.Parallel()

		tree := NewOrdered[int]()
		for i := range 64 {
			tree.Insert(i)
		}

		for i := 63; i >= 0; i-- {
			require.True(t, tree.Remove(i))
			requireValid(t, tree)
		}

		assert.True(t, tree.IsEmpty())
	})
}

func TestTree_Pop(t *testing.T) {
	t.Parallel()

	t.Run("pops ascending", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 4, 2, 3, 1)

		for _, expected := range []int{1, 2, 3, 4} {
			assert.Equal(t, optional.Some(expected), tree.Pop())
			requireValid(t, tree)
		}

		assert.True(t, tree.Pop().Empty())
		assert.Equal(t, 0, tree.Len())
	})

	t.Run("custom comparator pops highest first", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Int(func(l, r int) int { return r - l }), 1, 2, 3, 4)

		assert.Equal(t, []int{4, 3, 2, 1}, tree.Ordered())
		assert.Equal(t, optional.Some(4), tree.Pop())
	})

	t.Run("pop max", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 4, 2, 3, 1)

		for _, expected := range []int{4, 3, 2, 1} {
			assert.Equal(t, optional.Some(expected), tree.PopMax())
			requireValid(t, tree)
		}

		assert.True(t, tree.PopMax().Empty())
	})

	t.Run("min and max peek", func(t *testing.T) {
		t.Parallel()

		tree := From(compare.Natural[int], 7, 3, 9)

		assert.Equal(t, optional.Some(3), tree.Min())
		assert.Equal(t, optional.Some(9), tree.Max())
		assert.Equal(t, 3, tree.Len())
	})
}

func TestTree_Update(t *testing.T) {
	t.Parallel()

	type counter struct {
		Name string
		Hits int
	}

	byName := compare.By(func(c counter) string { return c.Name }, compare.Natural[string])
	tree := From(byName, counter{Name: "a"}, counter{Name: "b"})

	found := tree.Update(counter{Name: "b"}, func(c *counter) { c.Hits++ })
	assert.True(t, found)
	assert.Equal(t, 1, tree.Get(counter{Name: "b"}).GetOrPanic().Hits)

	assert.False(t, tree.Update(counter{Name: "z"}, func(c *counter) { c.Hits++ }))
}

func TestTree_Clear(t *testing.T) {
	t.Parallel()

	tree := From(compare.Natural[int], 1, 2, 3)
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Empty(t, tree.Ordered())
	assert.True(t, tree.Insert(1))
}

func TestTree_Clone(t *testing.T) {
	t.Parallel()

	tree := From(compare.Natural[int], 5, 1, 9, 3)
	cp := tree.Clone()

	assert.Equal(t, tree.Render(), cp.Render())

	cp.Insert(100)
	tree.Remove(5)

	assert.Equal(t, []int{1, 3, 9}, tree.Ordered())
	assert.Equal(t, []int{1, 3, 5, 9, 100}, cp.Ordered())
	requireValid(t, tree)
	requireValid(t, cp)
}
