// Package envelope provides an asymmetric one-pole envelope follower.
package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

const (
	defaultAttackSeconds  = 0.005
	defaultReleaseSeconds = 0.5

	// settleRatio is the residual left after one time constant.
	settleRatio = 0.01
)

// Option mutates follower construction parameters.
type Option func(*config) error

type config struct {
	attack  float64
	release float64
}

// WithAttack sets the attack time in seconds (> 0).
func WithAttack(seconds float64) Option {
	return func(cfg *config) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("envelope attack must be > 0 and finite: %f", seconds)
		}

		cfg.attack = seconds

		return nil
	}
}

// WithRelease sets the release time in seconds (> 0).
func WithRelease(seconds float64) Option {
	return func(cfg *config) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("envelope release must be > 0 and finite: %f", seconds)
		}

		cfg.release = seconds

		return nil
	}
}

// Follower tracks the level of a signal with separate rise and fall times.
//
// Each sample moves the envelope e towards the input v as
//
//	e = a*(e-v) + v
//
// where a is the attack coefficient while v > e and the release coefficient
// otherwise. After one attack time a rising step has covered 99% of the
// distance; after one release time a falling step has 1% left.
//
// The input is not rectified. A NaN or Inf input resets the envelope to zero.
type Follower struct {
	attackCoeff  float64
	releaseCoeff float64
	value        float64
}

// New returns a follower for sampleRate with 5 ms attack and 500 ms release
// unless overridden.
func New(sampleRate float64, opts ...Option) (*Follower, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("envelope sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := config{attack: defaultAttackSeconds, release: defaultReleaseSeconds}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.attack == cfg.release {
		return nil, fmt.Errorf("envelope attack and release must differ: %f", cfg.attack)
	}

	return &Follower{
		attackCoeff:  Coefficient(cfg.attack, sampleRate),
		releaseCoeff: Coefficient(cfg.release, sampleRate),
	}, nil
}

// Coefficient returns the per-sample coefficient that leaves 1% of a step
// after seconds at sampleRate.
func Coefficient(seconds, sampleRate float64) float64 {
	n := seconds * sampleRate
	if !(n > 0) || math.IsInf(n, 0) {
		return 0
	}

	return math.Pow(settleRatio, 1/n)
}

// Coefficients returns the attack and release coefficients.
func (f *Follower) Coefficients() (attack, release float64) {
	return f.attackCoeff, f.releaseCoeff
}

// Reset sets the envelope to zero.
func (f *Follower) Reset() {
	f.value = 0
}

// Value returns the current envelope.
func (f *Follower) Value() float64 { return f.value }

// Tick advances the follower by one input sample and returns the envelope.
func (f *Follower) Tick(v float64) float64 {
	e := f.value
	if v > e {
		e = f.attackCoeff*(e-v) + v
	} else {
		e = f.releaseCoeff*(e-v) + v
	}

	f.value = core.FlushDenormals(core.FiniteOrZero(e))

	return f.value
}

// ProcessBlock writes the envelope of src into dst. dst may alias src.
func (f *Follower) ProcessBlock(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]

	for i, v := range src {
		dst[i] = f.Tick(v)
	}
}
