package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/effects"
	"github.com/cwbudde/algo-synthfx/dsp/effects/modulation"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/dsp/mix"
	"github.com/cwbudde/algo-synthfx/internal/cli"
	"github.com/cwbudde/algo-synthfx/measure/tone"
)

// analysisWindow is the number of trailing output samples the report
// analyzes, so start-up transients do not dominate.
const analysisWindow = 16384

type renderConfig struct {
	effect     string
	signal     cli.SignalConfig
	sets       cli.SetFlags
	automation *automation
	gainDB     float64
}

type report struct {
	Effect        string
	Blocks        int
	Seconds       float64
	Budget        float64
	TrackedLength [2]float64
	HasTracker    bool
	Frequency     float64
	Peak          float64
	RMS           float64
}

// render pushes the generated signal through a one-slot rack holding
// cfg.effect and returns the processed channels.
func render(cfg renderConfig, logger *slog.Logger) ([]float64, []float64, report, error) {
	proc, err := cfg.signal.Processor()
	if err != nil {
		return nil, nil, report{}, err
	}

	rack, err := fx.NewRack(effects.DefaultRegistry(),
		fx.WithSlots(1),
		fx.WithProcessor(proc),
		fx.WithLogger(logger))
	if err != nil {
		return nil, nil, report{}, err
	}

	if err := rack.Assign(0, cfg.effect); err != nil {
		return nil, nil, report{}, err
	}

	params, err := rack.Params(0)
	if err != nil {
		return nil, nil, report{}, err
	}

	if err := cfg.sets.Apply(params); err != nil {
		return nil, nil, report{}, fmt.Errorf("-set: %w", err)
	}

	left, right, err := cli.Generate(cfg.signal)
	if err != nil {
		return nil, nil, report{}, err
	}

	// Pad to whole blocks; the rack only accepts full blocks.
	if rem := len(left) % core.BlockSize; rem != 0 {
		pad := make([]float64, core.BlockSize-rem)
		left = append(left, pad...)
		right = append(right, pad...)
	}

	blocks := len(left) / core.BlockSize
	logger.Debug("render", "effect", cfg.effect, "signal", cfg.signal.Kind, "blocks", blocks)

	for b := range blocks {
		lo, hi := b*core.BlockSize, (b+1)*core.BlockSize

		if cfg.automation != nil {
			t := float64(lo) * proc.SampleRateInv()
			if err := cfg.automation.apply(b, t, params); err != nil {
				return nil, nil, report{}, err
			}
		}

		if err := rack.Process(left[lo:hi], right[lo:hi]); err != nil {
			return nil, nil, report{}, fmt.Errorf("block %d: %w", b, err)
		}
	}

	if cfg.gainDB != 0 {
		g := core.DBToLinear(cfg.gainDB)
		mix.Gain(left, left, g)
		mix.Gain(right, right, g)
	}

	rep := report{
		Effect:  cfg.effect,
		Blocks:  blocks,
		Seconds: float64(len(left)) * proc.SampleRateInv(),
		Budget:  proc.BlockDuration(),
		Peak:    max(tone.Peak(left), tone.Peak(right)),
		RMS:     tone.RMS(left),
	}

	effect, err := rack.Effect(0)
	if err != nil {
		return nil, nil, report{}, err
	}

	if pr, ok := effect.(*modulation.PitchRing); ok {
		rep.HasTracker = true
		rep.TrackedLength = [2]float64{pr.TrackedLength(0), pr.TrackedLength(1)}
	}

	tail := left[max(0, len(left)-analysisWindow):]
	if tone.Peak(tail) > 0 {
		if f, err := tone.DominantFrequency(tail, proc.SampleRate); err == nil {
			rep.Frequency = f
		}
	}

	return left, right, rep, nil
}
