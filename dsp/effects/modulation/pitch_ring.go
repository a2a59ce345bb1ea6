package modulation

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/envelope"
	"github.com/cwbudde/algo-synthfx/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/dsp/lag"
	"github.com/cwbudde/algo-synthfx/dsp/mix"
	"github.com/cwbudde/algo-synthfx/dsp/oscillator"
	"github.com/cwbudde/algo-synthfx/dsp/pitchtrack"
)

// PitchRing parameter ids.
const (
	PitchRingThreshold = iota
	PitchRingSpeed
	PitchRingLowCut
	PitchRingHighCut
	PitchRingPitch
	PitchRingRingMix
	PitchRingWidth
	PitchRingMix
)

var pitchRingGroups = []fx.Group{
	{Label: "Pitch Detection", Position: 1},
	{Label: "Oscillator", Position: 11},
	{Label: "Output", Position: 17},
}

// PitchRingParams returns the parameter layout of [PitchRing].
func PitchRingParams() []fx.ParamSpec {
	return []fx.ParamSpec{
		{Name: "Threshold", Unit: "dB", Min: -96, Max: 0, Default: -24, Group: 0},
		{Name: "Speed", Unit: "%", Min: 0, Max: 1, Default: 0.5, Group: 0},
		{Name: "Low Cut", Unit: "semitones", Min: -60, Max: 70, Default: -60, Deactivatable: true, Group: 0},
		{Name: "High Cut", Unit: "semitones", Min: -60, Max: 70, Default: 70, Deactivatable: true, Group: 0},
		{Name: "Pitch", Unit: "semitones", Min: -48, Max: 48, Default: 0, Group: 1},
		{Name: "Ring Modulation", Unit: "%", Min: 0, Max: 1, Default: 0.5, Group: 1},
		{Name: "Width", Unit: "%", Min: -1, Max: 1, Default: 1, Group: 2},
		{Name: "Mix", Unit: "%", Min: 0, Max: 1, Default: 1, Group: 2},
	}
}

// PitchRing tracks the pitch of its input per channel and resynthesizes it
// as a sine, which is blended between an envelope-following tone and a ring
// modulation of the input.
//
// Per block:
//
//	detect = lowcut(highcut(dry))         (each stage optional)
//	period = tracker(detect)              (glides once per block)
//	osc    = sin at 2π/period * 2^(pitch/12)
//	tone   = osc * envelope(dry)
//	ring   = osc * dry
//	wet    = width(crossfade(tone, ring, ringmix))
//	out    = crossfade(dry, wet, mix)
//
// The right oscillator runs a quarter turn ahead of the left.
type PitchRing struct {
	sampleRate float64
	params     *fx.ParamSet

	highpass *biquad.Stereo
	lowpass  *biquad.Stereo

	osc      [2]oscillator.Sine
	envelope [2]*envelope.Follower
	tracker  [2]*pitchtrack.Tracker

	ringMix lag.Lag
	width   lag.Lag
	mix     lag.Lag

	wet    [2][core.BlockSize]float64
	detect [2][core.BlockSize]float64
	tone   [2][core.BlockSize]float64
}

// NewPitchRing builds a PitchRing bound to ctx. Call Init before Process.
func NewPitchRing(ctx fx.Context) (*PitchRing, error) {
	params, err := ctx.Bind(PitchRingParams())
	if err != nil {
		return nil, fmt.Errorf("pitch ring: %w", err)
	}

	p := &PitchRing{
		sampleRate: ctx.SampleRate,
		params:     params,
		highpass:   biquad.NewStereo(),
		lowpass:    biquad.NewStereo(),
	}

	for c := range 2 {
		p.envelope[c], err = envelope.New(ctx.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("pitch ring: %w", err)
		}

		p.tracker[c], err = pitchtrack.New(ctx.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("pitch ring: %w", err)
		}
	}

	return p, nil
}

// Init resets every filter, oscillator, envelope and tracker, and snaps the
// output ramps to their start values.
func (p *PitchRing) Init() {
	p.highpass.Reset()
	p.highpass.SetHighpass(p.cutoff(PitchRingLowCut), biquad.ButterworthQ)
	p.highpass.Instantize()

	p.lowpass.Reset()
	p.lowpass.SetLowpass(p.cutoff(PitchRingHighCut), biquad.ButterworthQ)
	p.lowpass.Instantize()

	for c := range 2 {
		p.osc[c].SetRate(0)
		p.envelope[c].Reset()
		p.tracker[c].Reset()
	}

	p.osc[0].SetPhase(0)
	p.osc[1].SetPhase(math.Pi / 2)

	p.ringMix.SetTarget(1)
	p.width.SetTarget(0)
	p.mix.SetTarget(1)
	p.ringMix.Instantize()
	p.width.Instantize()
	p.mix.Instantize()
}

// Suspend is the same as Init.
func (p *PitchRing) Suspend() { p.Init() }

// Params returns the parameter layout.
func (p *PitchRing) Params() []fx.ParamSpec { return PitchRingParams() }

// Groups returns the parameter groups.
func (p *PitchRing) Groups() []fx.Group { return slices.Clone(pitchRingGroups) }

// ParamSet returns the parameter values the effect reads.
func (p *PitchRing) ParamSet() *fx.ParamSet { return p.params }

// TrackedLength returns the smoothed period of channel ch (0 left, 1 right)
// in samples.
func (p *PitchRing) TrackedLength(ch int) float64 {
	if ch < 0 || ch > 1 {
		return 0
	}

	return p.tracker[ch].Smoothed()
}

// PitchTrajectory returns the per-sample pitch of channel ch for the last
// processed block, in log2 units above core.MIDI0Freq.
func (p *PitchRing) PitchTrajectory(ch int) [core.BlockSize]float64 {
	if ch < 0 || ch > 1 {
		return [core.BlockSize]float64{}
	}

	return *p.tracker[ch].Trajectory()
}

// Process applies the effect to one block in place.
func (p *PitchRing) Process(left, right []float64) {
	if !core.IsBlock(left, right) {
		return
	}

	threshold := core.DBToLinear(p.params.Clamped(PitchRingThreshold))

	copy(p.wet[0][:], left)
	copy(p.wet[1][:], right)
	copy(p.detect[0][:], left)
	copy(p.detect[1][:], right)

	if !p.params.Deactivated(PitchRingLowCut) {
		p.highpass.SetHighpass(p.cutoff(PitchRingLowCut), biquad.ButterworthQ)
		p.highpass.ProcessBlock(p.detect[0][:], p.detect[1][:])
	}

	if !p.params.Deactivated(PitchRingHighCut) {
		p.lowpass.SetLowpass(p.cutoff(PitchRingHighCut), biquad.ButterworthQ)
		p.lowpass.ProcessBlock(p.detect[0][:], p.detect[1][:])
	}

	speed := p.params.Clamped(PitchRingSpeed)
	pitch := p.params.Clamped(PitchRingPitch)

	for c := range 2 {
		p.tracker[c].BeginBlock(speed)
		p.osc[c].SetRate(p.tracker[c].Rate(pitch))
	}

	dry := [2][]float64{left, right}

	for k := range core.BlockSize {
		for c := range 2 {
			env := p.envelope[c].Tick(dry[c][k])
			p.tracker[c].Detect(p.detect[c][k], threshold)

			v := p.osc[c].Process()
			p.wet[c][k] = v
			p.tone[c][k] = v * env
		}
	}

	// The detection buffers are free now and hold the ring product.
	mix.Multiply(p.detect[0][:], p.wet[0][:], left)
	mix.Multiply(p.detect[1][:], p.wet[1][:], right)

	p.ringMix.SetTargetSmoothed(p.params.Clamped(PitchRingRingMix))
	mix.Crossfade(&p.ringMix,
		p.tone[0][:], p.detect[0][:], p.tone[1][:], p.detect[1][:],
		p.wet[0][:], p.wet[1][:])

	p.width.SetTargetSmoothed(p.params.Clamped(PitchRingWidth))
	mix.ApplyWidth(p.wet[0][:], p.wet[1][:], &p.width)

	p.mix.SetTargetSmoothed(p.params.Clamped(PitchRingMix))
	mix.Crossfade(&p.mix, left, p.wet[0][:], right, p.wet[1][:], left, right)
}

func (p *PitchRing) cutoff(id int) float64 {
	return biquad.CalcOmega(p.params.Clamped(id), p.sampleRate)
}
