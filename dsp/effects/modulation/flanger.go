package modulation

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/delay"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/dsp/lag"
	"github.com/cwbudde/algo-synthfx/dsp/mix"
	"github.com/cwbudde/algo-synthfx/dsp/oscillator"
)

// Flanger parameter ids.
const (
	FlangerRate = iota
	FlangerDepth
	FlangerBaseDelay
	FlangerFeedback
	FlangerWidth
	FlangerMix
)

const (
	maxFlangerDepthMs     = 5.0
	maxFlangerBaseDelayMs = 5.0
	minFlangerDelaySamp   = 1.0
)

var flangerGroups = []fx.Group{
	{Label: "Modulation", Position: 1},
	{Label: "Output", Position: 9},
}

// FlangerParams returns the parameter layout of [Flanger].
func FlangerParams() []fx.ParamSpec {
	return []fx.ParamSpec{
		{Name: "Rate", Unit: "Hz", Min: 0.05, Max: 5, Default: 0.25, Group: 0},
		{Name: "Depth", Unit: "ms", Min: 0, Max: maxFlangerDepthMs, Default: 1.5, Group: 0},
		{Name: "Base Delay", Unit: "ms", Min: 0.1, Max: maxFlangerBaseDelayMs, Default: 1, Group: 0},
		{Name: "Feedback", Unit: "%", Min: -0.99, Max: 0.99, Default: 0.25, Group: 0},
		{Name: "Width", Unit: "%", Min: -1, Max: 1, Default: 1, Group: 1},
		{Name: "Mix", Unit: "%", Min: 0, Max: 1, Default: 0.5, Group: 1},
	}
}

// Flanger is a short modulated delay with feedback per channel. The right
// LFO runs a quarter turn ahead of the left.
type Flanger struct {
	sampleRate float64
	params     *fx.ParamSet

	lfo  [2]oscillator.Sine
	line [2]*delay.Line

	width lag.Lag
	mix   lag.Lag

	wet [2][core.BlockSize]float64
}

// NewFlanger builds a Flanger bound to ctx. The delay lines are sized for
// the longest delay the parameters allow.
func NewFlanger(ctx fx.Context) (*Flanger, error) {
	params, err := ctx.Bind(FlangerParams())
	if err != nil {
		return nil, fmt.Errorf("flanger: %w", err)
	}

	f := &Flanger{sampleRate: ctx.SampleRate, params: params}

	maxSeconds := (maxFlangerDepthMs + maxFlangerBaseDelayMs) / 1000
	for c := range 2 {
		f.line[c], err = delay.ForDuration(maxSeconds, ctx.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("flanger: %w", err)
		}
	}

	return f, nil
}

// Init clears the delay lines and restarts the LFOs.
func (f *Flanger) Init() {
	for c := range 2 {
		f.line[c].Reset()
	}

	f.lfo[0].SetPhase(0)
	f.lfo[1].SetPhase(math.Pi / 2)

	f.width.SetTarget(f.params.Clamped(FlangerWidth))
	f.width.Instantize()
	f.mix.SetTarget(f.params.Clamped(FlangerMix))
	f.mix.Instantize()
}

// Suspend is the same as Init.
func (f *Flanger) Suspend() { f.Init() }

// Params returns the parameter layout.
func (f *Flanger) Params() []fx.ParamSpec { return FlangerParams() }

// Groups returns the parameter groups.
func (f *Flanger) Groups() []fx.Group { return slices.Clone(flangerGroups) }

// Process applies the effect to one block in place.
func (f *Flanger) Process(left, right []float64) {
	if !core.IsBlock(left, right) {
		return
	}

	msToSamples := f.sampleRate / 1000
	base := f.params.Clamped(FlangerBaseDelay) * msToSamples
	depth := f.params.Clamped(FlangerDepth) * msToSamples
	feedback := f.params.Clamped(FlangerFeedback)
	rate := 2 * math.Pi * f.params.Clamped(FlangerRate) / f.sampleRate

	dry := [2][]float64{left, right}

	for c := range 2 {
		f.lfo[c].SetRate(rate)
		line := f.line[c]

		for k, x := range dry[c] {
			mod := 0.5 * (1 + f.lfo[c].Value())
			d := max(base+depth*mod, minFlangerDelaySamp)

			delayed := line.ReadFractional(d)
			line.Write(core.FlushDenormals(core.FiniteOrZero(x + delayed*feedback)))
			f.wet[c][k] = delayed

			f.lfo[c].Process()
		}
	}

	f.width.SetTargetSmoothed(f.params.Clamped(FlangerWidth))
	mix.ApplyWidth(f.wet[0][:], f.wet[1][:], &f.width)

	f.mix.SetTargetSmoothed(f.params.Clamped(FlangerMix))
	mix.Crossfade(&f.mix, left, f.wet[0][:], right, f.wet[1][:], left, right)
}
