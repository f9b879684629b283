package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)

		assert.Same(t, errFirst, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)
		c.Add(errSecond)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, errFirst)
		require.ErrorIs(t, err, errSecond)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("clear resets", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)
		c.Clear()

		assert.False(t, c.HasError())
	})
}
