package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates one DFT bin incrementally. Power reflects every sample
// fed since construction or the last Reset.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
	n      int
}

// NewGoertzel returns an analyzer for frequency Hz at sampleRate.
// frequency must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0 and finite: %v", sampleRate)
	}

	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("goertzel: frequency %v not in [0, %v]", frequency, sampleRate/2)
	}

	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock feeds input through the resonator.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	for _, x := range input {
		s0, s1 = x+g.coeff*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X[k]|² over the samples processed so far.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude returns the peak amplitude of the component, 2·|X[k]|/N, so a
// sine of amplitude a that spans whole periods reads a. It is 0 before any
// sample was processed.
func (g *Goertzel) Amplitude() float64 {
	p := g.Power()
	if g.n == 0 || p <= 0 {
		return 0
	}

	return 2 * math.Sqrt(p) / float64(g.n)
}
