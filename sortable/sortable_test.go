package sortable_test

import (
	"math"
	"testing"

	"github.com/dakv/rb-tree/compare"
	"github.com/dakv/rb-tree/sortable"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		got      compare.Ordering
		expected compare.Ordering
	}{
		{name: "int less", got: sortable.Compare(sortable.Int(1), sortable.Int(2)), expected: compare.Less},
		{name: "int equal", got: sortable.Compare(sortable.Int(2), sortable.Int(2)), expected: compare.Equal},
		{name: "int greater", got: sortable.Compare(sortable.Int(3), sortable.Int(2)), expected: compare.Greater},
		{name: "byte less", got: sortable.Compare(sortable.Byte('a'), sortable.Byte('b')), expected: compare.Less},
		{name: "string greater", got: sortable.Compare(sortable.String("b"), sortable.String("a")), expected: compare.Greater},
		{name: "float less", got: sortable.Compare(sortable.Float(-1.5), sortable.Float(0)), expected: compare.Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestFloat_NaN(t *testing.T) {
	t.Parallel()

	nan := sortable.Float(math.NaN())

	assert.True(t, nan.Equals(nan))
	assert.True(t, nan.LessThan(sortable.Float(math.Inf(-1))))
	assert.False(t, sortable.Float(0).LessThan(nan))
	assert.Equal(t, compare.Equal, sortable.Compare(nan, nan))
	assert.Equal(t, compare.Greater, sortable.Compare(sortable.Float(1), nan))
}
