// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Block processing dispatches
// to a kernel chosen once from the host CPU features.
//
// [Stereo] pairs two sections behind one set of block-smoothed coefficients
// and is what the effects use to condition a signal ahead of pitch detection.
// [HighpassOmega] and [LowpassOmega] design Butterworth-style sections from a
// normalized angular cutoff, see [CalcOmega].
package biquad
