package biquad

import "github.com/cwbudde/algo-synthfx/dsp/lag"

// Stereo is a pair of sections sharing one set of coefficients, used to
// condition a left/right block in place.
//
// Coefficient changes glide linearly across the next block so that a cutoff
// that is recomputed every block from a modulated parameter does not zip.
// Instantize skips the glide, which is what initialization wants.
type Stereo struct {
	left, right Section

	b0, b1, b2 lag.Lag
	a1, a2     lag.Lag
}

// NewStereo returns a Stereo filter with passthrough coefficients.
func NewStereo() *Stereo {
	s := &Stereo{}
	s.SetCoefficients(Coefficients{B0: 1})
	s.Instantize()

	return s
}

// SetCoefficients sets the coefficients the next block glides to.
func (s *Stereo) SetCoefficients(c Coefficients) {
	s.b0.SetTargetSmoothed(c.B0)
	s.b1.SetTargetSmoothed(c.B1)
	s.b2.SetTargetSmoothed(c.B2)
	s.a1.SetTargetSmoothed(c.A1)
	s.a2.SetTargetSmoothed(c.A2)
}

// SetHighpass targets a highpass at omega (radians per sample) with quality q.
func (s *Stereo) SetHighpass(omega, q float64) {
	s.SetCoefficients(HighpassOmega(omega, q))
}

// SetLowpass targets a lowpass at omega (radians per sample) with quality q.
func (s *Stereo) SetLowpass(omega, q float64) {
	s.SetCoefficients(LowpassOmega(omega, q))
}

// Instantize snaps the running coefficients to their targets.
func (s *Stereo) Instantize() {
	s.b0.Instantize()
	s.b1.Instantize()
	s.b2.Instantize()
	s.a1.Instantize()
	s.a2.Instantize()
}

// Coefficients returns the coefficients in effect at the end of the last
// processed block.
func (s *Stereo) Coefficients() Coefficients {
	return Coefficients{
		B0: s.b0.Current(),
		B1: s.b1.Current(),
		B2: s.b2.Current(),
		A1: s.a1.Current(),
		A2: s.a2.Current(),
	}
}

// Reset clears both delay lines. Coefficients are kept.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// ProcessBlock filters left and right in place. Both slices must have the
// same length.
func (s *Stereo) ProcessBlock(left, right []float64) {
	if !s.ramping() {
		c := s.Coefficients()
		s.left.Coefficients = c
		s.right.Coefficients = c
		s.left.ProcessBlock(left)
		s.right.ProcessBlock(right)
		s.left.flushNonFinite()
		s.right.flushNonFinite()

		return
	}

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	for k := 0; k < n; k++ {
		c := Coefficients{
			B0: s.b0.At(k, n),
			B1: s.b1.At(k, n),
			B2: s.b2.At(k, n),
			A1: s.a1.At(k, n),
			A2: s.a2.At(k, n),
		}
		s.left.Coefficients = c
		s.right.Coefficients = c
		left[k] = s.left.ProcessSample(left[k])
		right[k] = s.right.ProcessSample(right[k])
	}

	s.left.flushNonFinite()
	s.right.flushNonFinite()

	s.b0.Advance()
	s.b1.Advance()
	s.b2.Advance()
	s.a1.Advance()
	s.a2.Advance()
}

func (s *Stereo) ramping() bool {
	return s.b0.Ramping() || s.b1.Ramping() || s.b2.Ramping() ||
		s.a1.Ramping() || s.a2.Ramping()
}
