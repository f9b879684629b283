package set

import "github.com/dakv/rb-tree/compare"

// NewStringSet creates a set of strings in natural order, so "item2" sorts
// before "item10".
func NewStringSet(elements ...string) OrderedSet[string] {
	return Of(compare.NaturalString, elements...)
}
