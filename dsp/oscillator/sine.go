// Package oscillator provides phase-accumulator oscillators driven at audio
// rate by the effects.
package oscillator

import "math"

const twoPi = 2 * math.Pi

// Sine is a phase accumulator whose output is the sine of its phase.
// Rate is in radians per sample and may be changed between any two samples.
type Sine struct {
	phase float64
	rate  float64
	value float64
}

// SetRate sets the phase increment in radians per sample. Non-finite rates
// stop the oscillator.
func (o *Sine) SetRate(omega float64) {
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		omega = 0
	}

	o.rate = omega
}

// Rate returns the phase increment in radians per sample.
func (o *Sine) Rate() float64 { return o.rate }

// SetPhase sets the phase, wrapped into [0, 2π), and updates Value.
func (o *Sine) SetPhase(phi float64) {
	o.phase = wrap(phi)
	o.value = math.Sin(o.phase)
}

// Phase returns the current phase in [0, 2π).
func (o *Sine) Phase() float64 { return o.phase }

// Value returns the sine of the current phase.
func (o *Sine) Value() float64 { return o.value }

// Process advances the phase by one sample and returns the new value.
func (o *Sine) Process() float64 {
	p := o.phase + o.rate
	if p >= twoPi || p < 0 {
		p = wrap(p)
	}

	o.phase = p
	o.value = math.Sin(p)

	return o.value
}

// ProcessBlock fills dst with consecutive oscillator values.
func (o *Sine) ProcessBlock(dst []float64) {
	for i := range dst {
		dst[i] = o.Process()
	}
}

func wrap(phi float64) float64 {
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		return 0
	}

	phi = math.Mod(phi, twoPi)
	if phi < 0 {
		phi += twoPi
	}

	if phi >= twoPi {
		phi = 0
	}

	return phi
}
