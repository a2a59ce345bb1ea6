package pitchtrack

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/lag"
)

const (
	// MinWavelength is the shortest period, in samples, accepted as a
	// detection. Shorter crossings are treated as noise.
	MinWavelength = 16

	// DefaultLength is the period, in samples, a reset tracker reports.
	DefaultLength = 100

	// ReferenceRate is the sample rate the smoothing step count is tuned for.
	ReferenceRate = 48000

	// minLength bounds periods before conversion to rates or pitches.
	minLength = 2

	// jumpRatio rejects detections this many times longer than the smoothed
	// period.
	jumpRatio = 10

	slowestCoeff = 0.9999
	coeffSpan    = 0.0999
)

// Tracker follows the period of one channel.
type Tracker struct {
	sampleRate float64
	steps      int

	length   float64
	target   float64
	smoother lag.OnePole
	first    bool
	last     float64

	trajectory [core.BlockSize]float64
}

// New returns a reset tracker for sampleRate.
func New(sampleRate float64) (*Tracker, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("pitchtrack sample rate must be > 0 and finite: %f", sampleRate)
	}

	t := &Tracker{
		sampleRate: sampleRate,
		steps:      SmoothingSteps(sampleRate),
	}
	t.Reset()

	return t, nil
}

// SmoothingSteps returns how many one-pole steps run per block at
// sampleRate, so that the glide time does not depend on the rate. The count
// is BlockSize*ReferenceRate/sampleRate rounded up, and at least one.
func SmoothingSteps(sampleRate float64) int {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 1
	}

	n := int(math.Ceil(core.BlockSize * ReferenceRate / sampleRate))

	return max(n, 1)
}

// SpeedCoefficient maps a speed in [0, 1] to the one-pole coefficient,
// 0.9999 at speed 0 down to 0.9 at speed 1. The mapping is quartic so most
// of the range is spent on slow glides.
func SpeedCoefficient(speed float64) float64 {
	s := core.Clamp01(speed)
	s *= s
	s *= s

	return slowestCoeff - s*coeffSpan
}

// Reset restores the default period and re-arms the first-detection snap.
func (t *Tracker) Reset() {
	t.length = DefaultLength
	t.target = DefaultLength
	t.smoother = lag.NewOnePole(DefaultLength, slowestCoeff)
	t.first = true
	t.last = 0

	l2 := t.log2Pitch(DefaultLength)
	for k := range t.trajectory {
		t.trajectory[k] = l2
	}
}

// BeginBlock glides the smoothed period towards the target with the given
// speed and fills the pitch trajectory for the coming block.
func (t *Tracker) BeginBlock(speed float64) {
	prev := t.smoother.Value()

	t.smoother.SetCoefficient(SpeedCoefficient(speed))
	cur := t.smoother.StepN(t.target, t.steps)

	l2prev := t.log2Pitch(prev)
	dl := (t.log2Pitch(cur) - l2prev) * core.BlockSizeInv

	for k := range t.trajectory {
		t.trajectory[k] = l2prev + dl*float64(k)
	}
}

// Detect feeds one conditioned sample. threshold is a linear amplitude the
// crossing sample must exceed to count as a detection.
func (t *Tracker) Detect(x, threshold float64) {
	if t.last < 0 && x >= 0 {
		if x > threshold && t.length > MinWavelength {
			smoothed := t.smoother.Value()
			if t.length > smoothed*jumpRatio {
				t.target = smoothed
			} else {
				t.target = t.length
			}

			if t.first {
				t.smoother.Set(t.length)
			}

			t.first = false
		}

		t.length = 0
	}

	t.length++

	// Non-finite input must not stall crossing detection.
	if math.IsNaN(x) {
		x = 0
	}

	t.last = x
}

// Rate returns the angular rate in radians per sample of a tone at the
// smoothed period shifted by pitch semitones.
func (t *Tracker) Rate(pitch float64) float64 {
	return 2 * math.Pi / math.Max(minLength, t.smoother.Value()) * power2(pitch/12)
}

// Length returns the samples counted since the last positive crossing.
func (t *Tracker) Length() float64 { return t.length }

// Target returns the period the tracker is gliding to.
func (t *Tracker) Target() float64 { return t.target }

// Smoothed returns the smoothed period in samples.
func (t *Tracker) Smoothed() float64 { return t.smoother.Value() }

// Steps returns the one-pole steps run per block.
func (t *Tracker) Steps() int { return t.steps }

// Trajectory returns the per-sample pitch of the current block in log2 units
// above [core.MIDI0Freq]. The returned array is owned by the tracker.
func (t *Tracker) Trajectory() *[core.BlockSize]float64 { return &t.trajectory }

func (t *Tracker) log2Pitch(length float64) float64 {
	return log2(t.sampleRate / math.Max(length, minLength) / core.MIDI0Freq)
}
