// Package testutil holds deterministic test signals and block rendering
// helpers shared by the effect tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// BlockProcessor is anything that processes a stereo block in place.
type BlockProcessor interface {
	Process(left, right []float64)
}

// Sine returns a sine that starts half a sample into its period, so no
// sample of a period that divides the sample rate sits exactly on a zero
// crossing.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*(float64(i)+0.5))
	}

	return out
}

// Noise returns uniform white noise in [-amplitude, amplitude) from a fixed
// seed.
func Noise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))

	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// Blocks returns the sample count of n whole blocks.
func Blocks(n int) int { return n * core.BlockSize }

// Render runs p over copies of left and right one block at a time and
// returns the processed copies. A trailing partial block is dropped.
func Render(p BlockProcessor, left, right []float64) ([]float64, []float64) {
	n := min(len(left), len(right)) / core.BlockSize * core.BlockSize
	outL := append([]float64(nil), left[:n]...)
	outR := append([]float64(nil), right[:n]...)

	for i := 0; i < n; i += core.BlockSize {
		p.Process(outL[i:i+core.BlockSize], outR[i:i+core.BlockSize])
	}

	return outL, outR
}
