package envutil_test

import (
	"log/slog"
	"testing"

	"github.com/dakv/rb-tree/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		t.Setenv("RBTREE_TEST_STRING", "value")

		value, err := envutil.String("RBTREE_TEST_STRING").Value()
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := envutil.String("RBTREE_TEST_STRING_MISSING").Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
	})

	t.Run("default", func(t *testing.T) {
		reader := envutil.String("RBTREE_TEST_STRING_MISSING", envutil.Default("dflt"))
		assert.Equal(t, "dflt", reader.ValueOrElse("other"))
		assert.Equal(t, "RBTREE_TEST_STRING_MISSING=dflt", reader.String())
	})
}

func TestBool(t *testing.T) {
	t.Setenv("RBTREE_TEST_BOOL", "true")
	t.Setenv("RBTREE_TEST_BOOL_BAD", "maybe")

	assert.True(t, envutil.Bool("RBTREE_TEST_BOOL").ValueOrElse(false))

	bad := envutil.Bool("RBTREE_TEST_BOOL_BAD", envutil.Default(true))
	assert.False(t, bad.HasValue())

	_, err := bad.Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}

func TestInt(t *testing.T) {
	t.Setenv("RBTREE_TEST_INT", " 42 ")

	value, err := envutil.Int("RBTREE_TEST_INT").Value()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestSlogLevel(t *testing.T) {
	t.Setenv("RBTREE_TEST_LEVEL", " DEBUG")
	t.Setenv("RBTREE_TEST_LEVEL_BAD", "loud")

	assert.Equal(t, slog.LevelDebug, envutil.SlogLevel("RBTREE_TEST_LEVEL").ValueOrElse(slog.LevelInfo))

	_, err := envutil.SlogLevel("RBTREE_TEST_LEVEL_BAD").Value()
	require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)
}

func TestOneOf(t *testing.T) {
	t.Setenv("RBTREE_TEST_ORDER", "natural")
	t.Setenv("RBTREE_TEST_ORDER_BAD", "random")

	choices := []string{"lexical", "natural"}

	assert.Equal(t, "natural", envutil.OneOf("RBTREE_TEST_ORDER", choices).ValueOrElse("lexical"))

	_, err := envutil.OneOf("RBTREE_TEST_ORDER_BAD", choices).Value()
	require.ErrorIs(t, err, envutil.ErrInvalidChoice)
}

func TestValidate(t *testing.T) {
	t.Setenv("RBTREE_TEST_POSITIVE", "-3")

	reader := envutil.Int("RBTREE_TEST_POSITIVE", envutil.Validate(func(v int) error {
		if v < 0 {
			return assert.AnError
		}

		return nil
	}))

	_, err := reader.Value()
	require.ErrorIs(t, err, assert.AnError)
}
