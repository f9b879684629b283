// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// Clear overwrites *ptr with the zero value of T, releasing anything it referenced.
func Clear[T any](ptr *T) {
	*ptr = Value[T]()
}
