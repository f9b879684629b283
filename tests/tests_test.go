package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	first, ok := GetTestInfo(GetUniqueContext(t))
	require.True(t, ok)

	second, _ := GetTestInfo(GetUniqueContext(t))

	assert.Equal(t, t.Name(), first.Name)
	assert.True(t, strings.HasPrefix(first.Id, "test-"))
	assert.NotEqual(t, first.Id, second.Id)

	_, ok = GetTestInfo(t.Context())
	assert.False(t, ok)
}

func TestRand(t *testing.T) {
	t.Setenv(SeedEnv, "")

	// An unparsable override falls back to the given seed.
	a := Rand(t, 5).Uint64()
	b := Rand(t, 5).Uint64()
	assert.Equal(t, a, b)

	t.Setenv(SeedEnv, "6")
	assert.Equal(t, Rand(t, 6).Uint64(), Rand(t, 1).Uint64())
}

func TestCheckSkipped(t *testing.T) {
	t.Setenv("RBTREE_TEST_SKIP_ME", "true")

	t.Run("skips", func(t *testing.T) {
		CheckSkipped(t, "RBTREE_TEST_SKIP_ME")
		t.Fatal("should have been skipped")
	})

	t.Run("runs", func(t *testing.T) {
		CheckSkipped(t, "RBTREE_TEST_NOT_SET")
	})
}
