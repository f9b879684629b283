package maps

import (
	"encoding/json"
	"iter"
	"sync"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
	"gopkg.in/yaml.v3"
)

// NewThreadSafe wraps an existing OrderedMap with thread-safe access using sync.RWMutex.
//
// Write operations (Insert, Add, Update, Remove, Pop, Clear) acquire the exclusive lock,
// read operations share the read lock. Reads may run the comparator from several
// goroutines at once, so it must be safe for concurrent use.
//
// Example usage:
//
//	safe := maps.NewThreadSafe[string, int](maps.NewOrderedMap[string, int]())
//	safe.Add("key", 42) // thread-safe
func NewThreadSafe[K any, V any](m OrderedMap[K, V]) OrderedMap[K, V] {
	if m == nil {
		return nil
	}

	tsm, ok := m.(*threadSafeMap[K, V])
	if ok {
		// Already thread-safe, return as-is
		return tsm
	}

	return &threadSafeMap[K, V]{
		internal: m,
	}
}

// threadSafeMap is a decorator that guards any OrderedMap with a sync.RWMutex.
type threadSafeMap[K any, V any] struct {
	mutex    sync.RWMutex     // Protects access to internal map
	internal OrderedMap[K, V] // Underlying map implementation
}

func (t *threadSafeMap[K, V]) Insert(key K, value V) optional.Value[KeyValuePair[K, V]] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Insert(key, value)
}

func (t *threadSafeMap[K, V]) Add(key K, value V) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(key, value)
}

func (t *threadSafeMap[K, V]) Get(key K) (V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(key)
}

func (t *threadSafeMap[K, V]) GetOrElse(key K, defaultValue V) V {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetOrElse(key, defaultValue)
}

func (t *threadSafeMap[K, V]) GetPair(key K) optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetPair(key)
}

// Update runs fn while holding the write lock; fn must not call back into the map.
func (t *threadSafeMap[K, V]) Update(key K, fn func(value *V)) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Update(key, fn)
}

func (t *threadSafeMap[K, V]) ContainsKey(key K) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.ContainsKey(key)
}

func (t *threadSafeMap[K, V]) Remove(key K) optional.Value[V] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(key)
}

func (t *threadSafeMap[K, V]) Pop() optional.Value[KeyValuePair[K, V]] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Pop()
}

func (t *threadSafeMap[K, V]) First() optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.First()
}

func (t *threadSafeMap[K, V]) Last() optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Last()
}

func (t *threadSafeMap[K, V]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeMap[K, V]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsEmpty()
}

func (t *threadSafeMap[K, V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeMap[K, V]) Keys() []K {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Keys()
}

func (t *threadSafeMap[K, V]) Values() []V {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Values()
}

func (t *threadSafeMap[K, V]) Entries() []KeyValuePair[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq iterates over a snapshot taken under the read lock.
func (t *threadSafeMap[K, V]) Seq() iter.Seq2[K, V] {
	entries := t.Entries()

	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Drain takes the write lock once per popped pair.
func (t *threadSafeMap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			next, ok := t.Pop().Get()
			if !ok || !yield(next.Key, next.Value) {
				return
			}
		}
	}
}

func (t *threadSafeMap[K, V]) Clone() OrderedMap[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Clone())
}

func (t *threadSafeMap[K, V]) Comparator() compare.Func[K] {
	return t.internal.Comparator()
}

func (t *threadSafeMap[K, V]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}

func (t *threadSafeMap[K, V]) Render() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Render()
}

// MarshalJSON encodes the wrapped map under the read lock.
func (t *threadSafeMap[K, V]) MarshalJSON() ([]byte, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if marshaler, ok := t.internal.(json.Marshaler); ok {
		return marshaler.MarshalJSON()
	}

	return encodeJSON(t.internal.Entries())
}

// MarshalYAML encodes the wrapped map under the read lock.
func (t *threadSafeMap[K, V]) MarshalYAML() (any, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if marshaler, ok := t.internal.(yaml.Marshaler); ok {
		return marshaler.MarshalYAML()
	}

	return t.internal.Entries(), nil
}

// Verify checks the wrapped map's invariants, if it can check them.
func (t *threadSafeMap[K, V]) Verify() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if verifier, ok := t.internal.(interface{ Verify() error }); ok {
		return verifier.Verify()
	}

	return nil
}
