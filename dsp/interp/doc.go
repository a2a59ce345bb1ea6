// Package interp provides interpolation primitives used by delay-based DSP
// blocks.
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite, the default for modulated delays
package interp
