// Package safe provides overflow-checked int64 arithmetic for wire-unit
// conversions. An overflow here means a corrupt vendor payload, not a
// recoverable condition.
package safe

import "math"

// Mul performs int64 multiplication and panics on overflow/underflow.
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > 0 {
		if b > 0 {
			if a > math.MaxInt64/b {
				panic("SAFE_MUL_OVERFLOW")
			}
		} else {
			if b < math.MinInt64/a {
				panic("SAFE_MUL_OVERFLOW")
			}
		}
	} else {
		if b > 0 {
			if a < math.MinInt64/b {
				panic("SAFE_MUL_OVERFLOW")
			}
		} else {
			if a < math.MaxInt64/b {
				panic("SAFE_MUL_OVERFLOW")
			}
		}
	}
	return a * b
}

// Div performs int64 division and panics on division by zero.
func Div(a, b int64) int64 {
	if b == 0 {
		panic("SAFE_DIV_BY_ZERO")
	}
	if a == math.MinInt64 && b == -1 {
		panic("SAFE_DIV_OVERFLOW")
	}
	return a / b
}
