package modulation

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/dsp/lag"
	"github.com/cwbudde/algo-synthfx/dsp/mix"
	"github.com/cwbudde/algo-synthfx/dsp/oscillator"
)

// RingModulator parameter ids.
const (
	RingModCarrier = iota
	RingModMix
	RingModWidth
)

var ringModGroups = []fx.Group{
	{Label: "Carrier", Position: 1},
	{Label: "Output", Position: 5},
}

// RingModulatorParams returns the parameter layout of [RingModulator].
func RingModulatorParams() []fx.ParamSpec {
	return []fx.ParamSpec{
		{Name: "Carrier", Unit: "Hz", Min: 1, Max: 5000, Default: 440, Group: 0},
		{Name: "Mix", Unit: "%", Min: 0, Max: 1, Default: 1, Group: 1},
		{Name: "Width", Unit: "%", Min: -1, Max: 1, Default: 1, Group: 1},
	}
}

// RingModulator multiplies the input by a fixed-frequency sine carrier,
// producing sum and difference frequencies of the input and carrier.
//
//	wet = input * sin(2π * carrier * t)
//	out = input*(1-mix) + width(wet)*mix
type RingModulator struct {
	sampleRate float64
	params     *fx.ParamSet

	carrier oscillator.Sine

	width lag.Lag
	mix   lag.Lag

	car [core.BlockSize]float64
	wet [2][core.BlockSize]float64
}

// NewRingModulator builds a RingModulator bound to ctx.
func NewRingModulator(ctx fx.Context) (*RingModulator, error) {
	params, err := ctx.Bind(RingModulatorParams())
	if err != nil {
		return nil, fmt.Errorf("ring modulator: %w", err)
	}

	return &RingModulator{sampleRate: ctx.SampleRate, params: params}, nil
}

// Init restarts the carrier and snaps the output ramps to the current
// parameters.
func (r *RingModulator) Init() {
	r.carrier.SetPhase(0)

	r.width.SetTarget(r.params.Clamped(RingModWidth))
	r.width.Instantize()
	r.mix.SetTarget(r.params.Clamped(RingModMix))
	r.mix.Instantize()
}

// Suspend is the same as Init.
func (r *RingModulator) Suspend() { r.Init() }

// Params returns the parameter layout.
func (r *RingModulator) Params() []fx.ParamSpec { return RingModulatorParams() }

// Groups returns the parameter groups.
func (r *RingModulator) Groups() []fx.Group { return slices.Clone(ringModGroups) }

// Process applies the effect to one block in place.
func (r *RingModulator) Process(left, right []float64) {
	if !core.IsBlock(left, right) {
		return
	}

	r.carrier.SetRate(2 * math.Pi * r.params.Clamped(RingModCarrier) / r.sampleRate)
	r.carrier.ProcessBlock(r.car[:])

	mix.Multiply(r.wet[0][:], left, r.car[:])
	mix.Multiply(r.wet[1][:], right, r.car[:])

	r.width.SetTargetSmoothed(r.params.Clamped(RingModWidth))
	mix.ApplyWidth(r.wet[0][:], r.wet[1][:], &r.width)

	r.mix.SetTargetSmoothed(r.params.Clamped(RingModMix))
	mix.Crossfade(&r.mix, left, r.wet[0][:], right, r.wet[1][:], left, right)
}
