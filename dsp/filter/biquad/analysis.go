package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns the complex gain of c at freqHz for sampleRate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeDB returns the gain of c at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Poles returns the roots of the denominator 1 + A1*z^-1 + A2*z^-2. A stable
// section has both inside the unit circle.
func (c *Coefficients) Poles() [2]complex128 {
	root := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	b := complex(-c.A1, 0)

	return [2]complex128{(b + root) / 2, (b - root) / 2}
}
