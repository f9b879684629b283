package maps

import (
	"iter"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// OrderedMap associates unique keys with values and keeps the keys sorted
// under a comparator fixed at construction.
//
// Thread-safety: implementations are NOT thread-safe unless explicitly
// documented. Wrap with NewThreadSafe for concurrent use.
//
//nolint:interfacebloat // Map API mirrors the ordered set it is built on
type OrderedMap[K any, V any] interface {
	// Insert stores value under key and returns the pair it displaced, if any.
	// The stored key is replaced too, which matters when distinct keys compare Equal.
	Insert(key K, value V) optional.Value[KeyValuePair[K, V]]

	// Add stores value under key and reports whether the key was new.
	Add(key K, value V) bool

	// Get returns the value stored under key.
	Get(key K) (value V, found bool)

	// GetOrElse returns the value stored under key, or defaultValue.
	GetOrElse(key K, defaultValue V) V

	// GetPair returns the stored key and value for key.
	GetPair(key K) optional.Value[KeyValuePair[K, V]]

	// Update calls fn with a pointer to the value stored under key and reports
	// whether the key was present.
	Update(key K, fn func(value *V)) bool

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Remove deletes key and returns its value.
	Remove(key K) optional.Value[V]

	// Pop removes and returns the pair with the smallest key.
	Pop() optional.Value[KeyValuePair[K, V]]

	// First returns the pair with the smallest key.
	First() optional.Value[KeyValuePair[K, V]]

	// Last returns the pair with the largest key.
	Last() optional.Value[KeyValuePair[K, V]]

	// Size returns the number of pairs.
	Size() int

	// IsEmpty reports whether the map has no pairs.
	IsEmpty() bool

	// Clear removes all pairs.
	Clear()

	// Keys returns the keys in ascending order.
	Keys() []K

	// Values returns the values in ascending key order.
	Values() []V

	// Entries returns the pairs in ascending key order.
	Entries() []KeyValuePair[K, V]

	// Seq iterates the pairs in ascending key order:
	// for k, v := range m.Seq() { ... }
	Seq() iter.Seq2[K, V]

	// Drain pops pairs in ascending key order while the loop runs.
	Drain() iter.Seq2[K, V]

	// Clone returns an independent copy.
	Clone() OrderedMap[K, V]

	// Comparator returns the key order of the map.
	Comparator() compare.Func[K]

	// String lists the pairs in ascending key order.
	String() string

	// Render draws the underlying tree level by level with node colors.
	Render() string
}
