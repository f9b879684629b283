// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Float], [Byte], and [String].
// [Compare] turns any Sortable type into a [github.com/dakv/rb-tree/compare.Func],
// which is what the tree engine and its facades consume.
//
// # Usage
//
//	s := set.NewSortableSet[sortable.Int]()
//	s.Add(sortable.Int(42))
//	s.Add(sortable.Int(10))
//
//	// Elements are returned in sorted order: 10, 42
//	for val := range s.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// a.Equals(b) and b.LessThan(a) holds.
package sortable
