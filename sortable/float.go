package sortable

import "math"

// Float is a sortable wrapper for float64. NaN is treated as smaller than
// every other value and equal to itself, so it never breaks the total order
// a tree relies on.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	if math.IsNaN(float64(f)) || math.IsNaN(float64(other)) {
		return math.IsNaN(float64(f)) && math.IsNaN(float64(other))
	}

	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	switch {
	case math.IsNaN(float64(other)):
		return false
	case math.IsNaN(float64(f)):
		return true
	default:
		return float64(f) < float64(other)
	}
}
