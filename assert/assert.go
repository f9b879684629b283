// Package assert provides panicking assertions for internal preconditions.
//
// Assertions are compiled in by default. Build with the assertions_disabled
// tag to turn them into no-ops in hot paths.
package assert
