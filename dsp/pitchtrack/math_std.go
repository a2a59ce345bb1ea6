//go:build !fastmath

package pitchtrack

import "math"

func log2(x float64) float64 {
	return math.Log2(x)
}

func power2(x float64) float64 {
	return math.Exp2(x)
}
