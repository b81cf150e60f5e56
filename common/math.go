package common

import "math"

// Clamp limits v to [lo, hi]. If lo > hi the bounds are swapped.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(v, hi))
}
