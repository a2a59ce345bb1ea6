// Package effects wires the effect implementations into a registry that an
// [fx.Rack] can build slots from.
//
// Subpackages:
//   - github.com/cwbudde/algo-synthfx/dsp/effects/modulation
//
// Registered effect types:
//   - "pitchring": pitch-tracking sine resynthesis and ring modulation.
//   - "flanger": short modulated delay with feedback.
//   - "ringmod": fixed-carrier ring modulation.
package effects
