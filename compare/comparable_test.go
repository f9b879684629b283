package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNumber is a numeric type that implements Comparable.
type TestNumber int

func (n TestNumber) Equals(other TestNumber) bool {
	return int(n) == int(other)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[TestNumber](TestNumber(3), TestNumber(3)))
	assert.False(t, Equals[TestNumber](TestNumber(3), TestNumber(4)))
}
