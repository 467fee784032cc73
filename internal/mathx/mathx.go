// Package mathx holds the few numeric helpers shared by the display, touch
// and light code.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Map maps x in [inMin,inMax] to [outMin,outMax] with integer math.
// Either range may be descending. The result is clamped to the out range.
func Map(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	v := outMin + (x-inMin)*(outMax-outMin)/(inMax-inMin)
	return Clamp(v, outMin, outMax)
}
