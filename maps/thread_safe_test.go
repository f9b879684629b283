package maps

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/dakv/rb-tree/debug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewThreadSafe(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewThreadSafe[string, int](nil))

	safe := NewThreadSafe[string, int](NewOrderedMap[string, int]())
	assert.Same(t, safe, NewThreadSafe(safe))
}

func TestThreadSafeMap_ConcurrentUpdate(t *testing.T) {
	t.Parallel()

	safe := NewThreadSafe[string, int](NewOrderedMap[string, int]())
	safe.Add("hits", 0)

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				safe.Update("hits", func(v *int) { *v++ })
				_, _ = safe.Get("hits")
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1600, safe.GetOrElse("hits", -1))
}

func TestThreadSafeMap_SeqSnapshot(t *testing.T) {
	t.Parallel()

	safe := NewThreadSafe[int, string](NewOrderedMap[int, string]())
	safe.Add(1, "a")
	safe.Add(2, "b")

	for k := range safe.Seq() {
		safe.Remove(k)
	}

	assert.True(t, safe.IsEmpty())

	safe.Add(3, "c")

	clone := safe.Clone()
	_, ok := clone.(*threadSafeMap[int, string])
	assert.True(t, ok)

	for k, v := range safe.Drain() {
		assert.Equal(t, 3, k)
		assert.Equal(t, "c", v)
	}

	assert.True(t, safe.IsEmpty())
	assert.Equal(t, 1, clone.Size())
}

func TestThreadSafeMap_Encoders(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap[string, int]()
	m.Add("b", 2)
	m.Add("a", 1)

	safe := NewThreadSafe[string, int](m)

	data, err := json.Marshal(safe)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, string(data))

	data, err = yaml.Marshal(safe)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", string(data))

	verifier, ok := safe.(debug.Verifier)
	require.True(t, ok)
	require.NoError(t, debug.CheckTree(context.Background(), verifier))
}
