// Package spectrum provides the single-bin and windowing helpers the tone
// measurements build on.
//
// FFTs come from algo-fft; this package only covers what sits around them.
package spectrum
