// Package mix provides block-level stereo mixing primitives driven by
// [lag.Lag] ramps.
//
// All functions process whole blocks in place or into caller buffers and
// never allocate. The Lag argument is consumed: after the call its current
// value equals its target.
package mix

import (
	"github.com/cwbudde/algo-synthfx/dsp/lag"
	"github.com/cwbudde/algo-vecmath"
)

// Crossfade blends dry and wet per channel into out:
//
//	out[k] = (1-m[k])*dry[k] + m[k]*wet[k]
//
// where m[k] ramps from the Lag's current value to its target over the
// block. out may alias dry or wet. All slices must share the length of dryL.
func Crossfade(m *lag.Lag, dryL, wetL, dryR, wetR, outL, outR []float64) {
	n := len(dryL)
	if n == 0 {
		m.Advance()
		return
	}

	_ = wetL[n-1]
	_ = dryR[n-1]
	_ = wetR[n-1]
	_ = outL[n-1]
	_ = outR[n-1]

	if !m.Ramping() {
		g := m.Current()
		h := 1 - g
		for k := range n {
			outL[k] = h*dryL[k] + g*wetL[k]
			outR[k] = h*dryR[k] + g*wetR[k]
		}

		return
	}

	for k := range n {
		g := m.At(k, n)
		h := 1 - g
		outL[k] = h*dryL[k] + g*wetL[k]
		outR[k] = h*dryR[k] + g*wetR[k]
	}

	m.Advance()
}

// ApplyWidth scales the side component of a stereo block in place:
//
//	mid  = (l+r)/2
//	side = (l-r)/2
//	l = mid + w*side
//	r = mid - w*side
//
// w ramps like in [Crossfade]. 1 leaves the image unchanged, 0 folds to mono
// and -1 swaps the channels.
func ApplyWidth(left, right []float64, w *lag.Lag) {
	n := min(len(left), len(right))

	for k := range n {
		g := w.At(k, n)
		mid := 0.5 * (left[k] + right[k])
		side := 0.5 * (left[k] - right[k]) * g
		left[k] = mid + side
		right[k] = mid - side
	}

	w.Advance()
}

// Multiply writes the sample-wise product of a and b into dst, which may
// alias either input.
func Multiply(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

// Gain scales src by g into dst.
func Gain(dst, src []float64, g float64) {
	vecmath.ScaleBlock(dst, src, g)
}
