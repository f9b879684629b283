package set

import (
	"iter"
	"slices"
	"sync"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/optional"
)

// NewThreadSafe wraps an existing OrderedSet with thread-safe access using sync.RWMutex.
//
// Write operations (Add, Remove, Pop, Clear...) acquire the exclusive lock,
// read operations (Contains, First, Entries, Seq...) share the read lock.
// Concurrent reads run the comparator from several goroutines at once, so it
// must be safe for concurrent use.
//
// Example usage:
//
//	safe := set.NewThreadSafe(set.NewOrderedSet[int]())
//	safe.Add(42) // thread-safe
func NewThreadSafe[T any](s OrderedSet[T]) OrderedSet[T] {
	if s == nil {
		return nil
	}

	tss, ok := s.(*threadSafeSet[T])
	if ok {
		// Already thread-safe, return as-is
		return tss
	}

	return &threadSafeSet[T]{
		internal: s,
	}
}

// threadSafeSet is a decorator that guards any OrderedSet with a sync.RWMutex.
type threadSafeSet[T any] struct {
	mutex    sync.RWMutex  // Protects access to internal set
	internal OrderedSet[T] // Underlying set implementation
}

func (t *threadSafeSet[T]) Add(element T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(element)
}

func (t *threadSafeSet[T]) AddAll(elements ...T) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.AddAll(elements...)
}

func (t *threadSafeSet[T]) Replace(element T) optional.Value[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Replace(element)
}

func (t *threadSafeSet[T]) Remove(element T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(element)
}

func (t *threadSafeSet[T]) Take(element T) optional.Value[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Take(element)
}

func (t *threadSafeSet[T]) Contains(element T) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(element)
}

func (t *threadSafeSet[T]) Get(element T) optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(element)
}

func (t *threadSafeSet[T]) Pop() optional.Value[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Pop()
}

func (t *threadSafeSet[T]) First() optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.First()
}

func (t *threadSafeSet[T]) Last() optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Last()
}

func (t *threadSafeSet[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeSet[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeSet[T]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsEmpty()
}

func (t *threadSafeSet[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq iterates over a snapshot taken under the read lock, so the loop body
// may call back into the set without deadlocking.
func (t *threadSafeSet[T]) Seq() iter.Seq[T] {
	t.mutex.RLock()
	entries := t.internal.Entries()
	t.mutex.RUnlock()

	return slices.Values(entries)
}

// Drain takes the write lock once per popped element.
func (t *threadSafeSet[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			next := t.Pop()

			value, ok := next.Get()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// unlocked copies a thread-safe operand under its own read lock, so set algebra
// never holds two read locks at once (the same one twice for a.Union(a)).
func unlocked[T any](other OrderedSet[T]) OrderedSet[T] {
	tss, ok := other.(*threadSafeSet[T])
	if !ok {
		return other
	}

	tss.mutex.RLock()
	defer tss.mutex.RUnlock()

	return tss.internal.Clone()
}

func (t *threadSafeSet[T]) Union(other OrderedSet[T]) OrderedSet[T] {
	other = unlocked(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Union(other))
}

func (t *threadSafeSet[T]) Intersection(other OrderedSet[T]) OrderedSet[T] {
	other = unlocked(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Intersection(other))
}

func (t *threadSafeSet[T]) Difference(other OrderedSet[T]) OrderedSet[T] {
	other = unlocked(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Difference(other))
}

func (t *threadSafeSet[T]) IsSubset(other OrderedSet[T]) bool {
	other = unlocked(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsSubset(other)
}

func (t *threadSafeSet[T]) Clone() OrderedSet[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Clone())
}

func (t *threadSafeSet[T]) Comparator() compare.Func[T] {
	return t.internal.Comparator()
}

func (t *threadSafeSet[T]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}

func (t *threadSafeSet[T]) Render() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Render()
}
