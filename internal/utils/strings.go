// Package utils provides small, generic helper functions used across
// different layers of the SDK. These utilities are independent of domain
// or business logic.
package utils

// Truncate caps s to at most n bytes, appending an ellipsis marker when the
// string was cut. Used to keep log fields (query strings, bodies) bounded.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "…(truncated)"
}
