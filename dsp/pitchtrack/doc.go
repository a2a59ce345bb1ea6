// Package pitchtrack estimates the period of a monophonic signal from the
// spacing of its positive zero crossings.
//
// A [Tracker] counts samples between crossings from negative to
// non-negative. A crossing whose sample exceeds the detection threshold and
// that closes a period longer than [MinWavelength] samples becomes the new
// target period, unless it is more than ten times the smoothed period, in
// which case the smoothed period is kept. The smoothed period then glides
// towards the target with a one-pole smoother once per block, and the block
// gets a per-sample trajectory of the estimated pitch in log2 units above
// the MIDI note 0 reference.
//
// Build with -tags fastmath to use polynomial log2/exp2 approximations from
// algo-approx in the per-block conversions.
package pitchtrack
