package biquad

import (
	"math"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// ButterworthQ is the quality factor of a maximally flat second-order section.
const ButterworthQ = 1 / math.Sqrt2

const (
	minOmega = 1e-6
	maxOmega = 0.98 * math.Pi
	minQ     = 0.01
)

// CalcOmega converts a cutoff given in semitones relative to A4 (440 Hz)
// into a normalized angular frequency for sampleRate.
func CalcOmega(semitones, sampleRate float64) float64 {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return maxOmega
	}

	return 2 * math.Pi * core.A4Freq * core.SemitonesToRatio(semitones) / sampleRate
}

// HighpassOmega designs an RBJ second-order highpass at the normalized
// angular cutoff omega (radians per sample). omega and q are clamped so the
// result is always finite and stable.
func HighpassOmega(omega, q float64) Coefficients {
	omega, q = clampOmegaQ(omega, q)

	cw := math.Cos(omega)
	alpha := math.Sin(omega) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// LowpassOmega designs an RBJ second-order lowpass at the normalized angular
// cutoff omega (radians per sample). omega and q are clamped so the result is
// always finite and stable.
func LowpassOmega(omega, q float64) Coefficients {
	omega, q = clampOmegaQ(omega, q)

	cw := math.Cos(omega)
	alpha := math.Sin(omega) / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

func clampOmegaQ(omega, q float64) (float64, float64) {
	if !core.IsFinite(omega) {
		omega = maxOmega
	}

	omega = core.Clamp(omega, minOmega, maxOmega)

	if !(q >= minQ) || math.IsInf(q, 0) {
		q = ButterworthQ
	}

	return omega, q
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	inv := 1 / a0

	return Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
