package maps

import (
	"fmt"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// KeyValuePair is a key with its value, as handed out by the map.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// String renders the pair as key=value.
func (p KeyValuePair[K, V]) String() string {
	return fmt.Sprintf("%v=%v", p.Key, p.Value)
}

// Entry is what the map stores in its tree. Entries compare by Key alone, so
// an Entry with an empty Value can stand in as a lookup probe for a stored one.
type Entry[K any, V any] struct {
	Key   K
	Value optional.Value[V]
}

func probe[K any, V any](key K) Entry[K, V] {
	return Entry[K, V]{Key: key}
}

func entryOf[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: optional.Some(value)}
}

// Pair converts a stored entry into a KeyValuePair. An entry without a value
// yields the zero value of V.
func (e Entry[K, V]) Pair() KeyValuePair[K, V] {
	value, _ := e.Value.Get()

	return KeyValuePair[K, V]{Key: e.Key, Value: value}
}

// String renders key=value, or just the key for a probe.
func (e Entry[K, V]) String() string {
	value, ok := e.Value.Get()
	if !ok {
		return fmt.Sprint(e.Key)
	}

	return fmt.Sprintf("%v=%v", e.Key, value)
}

// byKey lifts a key comparator to entries.
func byKey[K any, V any](cmp compare.Func[K]) compare.Func[Entry[K, V]] {
	return compare.By(func(e Entry[K, V]) K { return e.Key }, cmp)
}
