// Package modulation provides block-based stereo modulation effects that
// plug into an [fx.Rack].
//
// Included processors:
//   - PitchRing: pitch-tracking sine resynthesis blended with ring modulation.
//   - Flanger: short modulated delay with feedback.
//   - RingModulator: fixed carrier multiply.
//
// Every processor works on blocks of exactly [core.BlockSize] samples and
// reads its parameters from an [fx.ParamSet] at the start of each block.
package modulation

import "github.com/cwbudde/algo-synthfx/dsp/fx"

var (
	_ fx.Effect = (*PitchRing)(nil)
	_ fx.Effect = (*Flanger)(nil)
	_ fx.Effect = (*RingModulator)(nil)
)
