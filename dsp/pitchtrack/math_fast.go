//go:build fastmath

package pitchtrack

import "github.com/meko-christian/algo-approx"

const ln2 = 0.693147180559945309417232121458

func log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

func power2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
