// Package myfunction provides a small integer transform.
package myfunction

// MyFunction moves n one step away from zero: positive values are
// incremented, negative values are decremented and zero is returned as is.
// At the extremes of the int range the result wraps like any Go int
// arithmetic.
func MyFunction(n int) int {
	switch {
	case n > 0:
		return n + 1
	case n < 0:
		return n - 1
	}
	return 0
}
