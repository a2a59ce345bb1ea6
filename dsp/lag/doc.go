// Package lag provides click-free control-value smoothing for block-based
// processing.
//
// A [Lag] moves a control value from its current value to a target across
// exactly one block by linear interpolation. Block consumers such as
// mix.Crossfade and mix.ApplyWidth read the per-sample ramp, so a parameter
// that jumps between two callbacks glides inside the next block instead of
// stepping.
//
// [OnePole] is the exponential counterpart, used where a value should
// approach its target asymptotically over many blocks.
package lag
