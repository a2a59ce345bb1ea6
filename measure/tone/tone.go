// Package tone measures the frequency content and level of rendered test
// signals.
package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-synthfx/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySignal is returned when a measurement is given no samples.
var ErrEmptySignal = errors.New("tone: empty signal")

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak above DC. The signal is Hann-windowed and zero-padded to a power of
// two; the peak is refined by parabolic interpolation of the log magnitude.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) < 4 {
		return 0, ErrEmptySignal
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("tone: sample rate must be > 0 and finite: %f", sampleRate)
	}

	mag, err := magnitudeSpectrum(signal)
	if err != nil {
		return 0, err
	}

	peak := 1
	for k := 2; k < len(mag)-1; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	offset := 0.0
	if peak > 0 && peak < len(mag)-1 {
		offset = parabolicOffset(mag[peak-1], mag[peak], mag[peak+1])
	}

	fftSize := 2 * (len(mag) - 1)

	return (float64(peak) + offset) * sampleRate / float64(fftSize), nil
}

// Goertzel returns the amplitude of the frequency component at freq Hz,
// normalized so a full-scale sine at exactly freq reads about 1 when the
// signal spans a whole number of its periods.
func Goertzel(signal []float64, freq, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	g, err := spectrum.NewGoertzel(freq, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("tone: %w", err)
	}

	g.ProcessBlock(signal)

	return g.Amplitude(), nil
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return vecmath.MaxAbs(signal)
}

// RMS returns the root mean square level.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(signal, signal) / float64(len(signal)))
}

func magnitudeSpectrum(signal []float64) ([]float64, error) {
	n := len(signal)

	fftSize := 1
	for fftSize < n {
		fftSize <<= 1
	}

	window, err := spectrum.Hann(n)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, x := range signal {
		in[i] = complex(x*window[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("tone: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("tone: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// parabolicOffset fits a parabola through the log magnitudes of three
// neighboring bins and returns the vertex offset from the middle one in
// (-0.5, 0.5).
func parabolicOffset(a, b, c float64) float64 {
	const floor = 1e-300

	la := math.Log(math.Max(a, floor))
	lb := math.Log(math.Max(b, floor))
	lc := math.Log(math.Max(c, floor))

	den := la - 2*lb + lc
	if den == 0 {
		return 0
	}

	off := 0.5 * (la - lc) / den

	return math.Max(-0.5, math.Min(0.5, off))
}
