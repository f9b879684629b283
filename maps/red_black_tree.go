// Package maps provides an ordered map built on the red-black tree in package
// rbtree.
//
// The map stores Entry values in a single tree ordered by key alone, so every
// map operation is one tree operation on a key probe: insertion, removal and
// lookup are O(log n), Size is O(1), and iteration yields pairs in ascending
// key order.
package maps

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
	"github.com/dakv/rb-tree/rbtree"
)

// RedBlackTreeMap is an OrderedMap backed by a red-black tree.
// The zero value is not usable; construct one with NewRedBlackTreeMap or NewOrderedMap.
type RedBlackTreeMap[K any, V any] struct {
	tree *rbtree.Tree[Entry[K, V]]
	keys compare.Func[K]
}

var _ OrderedMap[string, int] = (*RedBlackTreeMap[string, int])(nil)

// NewRedBlackTreeMap creates an empty map whose keys are ordered by cmp.
func NewRedBlackTreeMap[K any, V any](cmp compare.Func[K]) *RedBlackTreeMap[K, V] {
	return &RedBlackTreeMap[K, V]{
		tree: rbtree.New(byKey[K, V](cmp)),
		keys: cmp,
	}
}

// NewOrderedMap creates an empty map using the natural order of K.
func NewOrderedMap[K cmp.Ordered, V any]() *RedBlackTreeMap[K, V] {
	return NewRedBlackTreeMap[K, V](compare.Natural[K])
}

func (m *RedBlackTreeMap[K, V]) Insert(key K, value V) optional.Value[KeyValuePair[K, V]] {
	return optional.Map(m.tree.Replace(entryOf(key, value)), Entry[K, V].Pair)
}

func (m *RedBlackTreeMap[K, V]) Add(key K, value V) bool {
	return m.tree.Insert(entryOf(key, value))
}

func (m *RedBlackTreeMap[K, V]) Get(key K) (V, bool) {
	stored, ok := m.tree.Get(probe[K, V](key)).Get()
	if !ok {
		var zero V

		return zero, false
	}

	return stored.Value.Get()
}

func (m *RedBlackTreeMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, ok := m.Get(key); ok {
		return value
	}

	return defaultValue
}

func (m *RedBlackTreeMap[K, V]) GetPair(key K) optional.Value[KeyValuePair[K, V]] {
	return optional.Map(m.tree.Get(probe[K, V](key)), Entry[K, V].Pair)
}

// Update hands fn the value stored under key. The key itself cannot change, so
// the tree order is never disturbed.
func (m *RedBlackTreeMap[K, V]) Update(key K, fn func(value *V)) bool {
	return m.tree.Update(probe[K, V](key), func(stored *Entry[K, V]) {
		value, _ := stored.Value.Get()
		fn(&value)
		stored.Value = optional.Some(value)
	})
}

func (m *RedBlackTreeMap[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

func (m *RedBlackTreeMap[K, V]) Remove(key K) optional.Value[V] {
	removed, ok := m.tree.Take(probe[K, V](key)).Get()
	if !ok {
		return optional.None[V]()
	}

	return removed.Value
}

func (m *RedBlackTreeMap[K, V]) Pop() optional.Value[KeyValuePair[K, V]] {
	return optional.Map(m.tree.Pop(), Entry[K, V].Pair)
}

func (m *RedBlackTreeMap[K, V]) First() optional.Value[KeyValuePair[K, V]] {
	return optional.Map(m.tree.Min(), Entry[K, V].Pair)
}

func (m *RedBlackTreeMap[K, V]) Last() optional.Value[KeyValuePair[K, V]] {
	return optional.Map(m.tree.Max(), Entry[K, V].Pair)
}

func (m *RedBlackTreeMap[K, V]) Size() int {
	return m.tree.Len()
}

func (m *RedBlackTreeMap[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

func (m *RedBlackTreeMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *RedBlackTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	for e := range m.tree.All() {
		keys = append(keys, e.Key)
	}

	return keys
}

func (m *RedBlackTreeMap[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	for e := range m.tree.All() {
		values = append(values, e.Pair().Value)
	}

	return values
}

func (m *RedBlackTreeMap[K, V]) Entries() []KeyValuePair[K, V] {
	pairs := make([]KeyValuePair[K, V], 0, m.tree.Len())
	for e := range m.tree.All() {
		pairs = append(pairs, e.Pair())
	}

	return pairs
}

func (m *RedBlackTreeMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			p := e.Pair()
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *RedBlackTreeMap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.Drain() {
			p := e.Pair()
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *RedBlackTreeMap[K, V]) Clone() OrderedMap[K, V] {
	return &RedBlackTreeMap[K, V]{
		tree: m.tree.Clone(),
		keys: m.keys,
	}
}

func (m *RedBlackTreeMap[K, V]) Comparator() compare.Func[K] {
	return m.keys
}

// String lists the pairs in key order, e.g. "[a=1 b=2]".
func (m *RedBlackTreeMap[K, V]) String() string {
	return fmt.Sprint(m.Entries())
}

func (m *RedBlackTreeMap[K, V]) Render() string {
	return m.tree.Render()
}

// Verify checks the red-black invariants of the underlying tree.
func (m *RedBlackTreeMap[K, V]) Verify() error {
	return m.tree.Verify()
}
