package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSectionHighpassImpulse(t *testing.T) {
	c := HighpassOmega(0.25, ButterworthQ)
	s := NewSection(c)

	// DF-II-T by hand: y0 = B0, y1 = B1 - A1*y0, y2 = B2 - A1*y1 - A2*y0.
	y0 := c.B0
	y1 := c.B1 - c.A1*y0
	y2 := c.B2 - c.A1*y1 - c.A2*y0

	for i, want := range []float64{y0, y1, y2} {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if got := s.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("h[%d]=%.15f, want %.15f", i, got, want)
		}
	}
}

func TestSectionBlockMatchesSample(t *testing.T) {
	for name, c := range map[string]Coefficients{
		"highpass": HighpassOmega(CalcOmega(-12, 44100), ButterworthQ),
		"lowpass":  LowpassOmega(CalcOmega(30, 44100), 2),
	} {
		ref := NewSection(c)
		blk := NewSection(c)

		buf := make([]float64, 32)
		for i := range buf {
			buf[i] = math.Sin(0.37*float64(i)) + 0.25
		}

		want := make([]float64, len(buf))
		for i, x := range buf {
			want[i] = ref.ProcessSample(x)
		}

		blk.ProcessBlock(buf)

		for i := range buf {
			if !almostEqual(buf[i], want[i], eps) {
				t.Fatalf("%s sample %d: block=%.15f, sample=%.15f", name, i, buf[i], want[i])
			}
		}

		if blk.State() != ref.State() {
			t.Fatalf("%s state: block=%v, sample=%v", name, blk.State(), ref.State())
		}
	}
}

func TestSectionReset(t *testing.T) {
	s := NewSection(LowpassOmega(0.4, ButterworthQ))
	s.ProcessSample(1)

	if s.State() == [2]float64{} {
		t.Fatal("state still zero after an impulse")
	}

	s.Reset()

	if got := s.State(); got != [2]float64{} {
		t.Fatalf("state after Reset=%v", got)
	}
}

func TestSectionFlushNonFinite(t *testing.T) {
	s := NewSection(HighpassOmega(0.1, ButterworthQ))
	s.ProcessSample(0.5)

	saved := s.State()
	s.flushNonFinite()

	if s.State() != saved {
		t.Fatalf("finite state changed: %v -> %v", saved, s.State())
	}

	s.ProcessSample(math.Inf(1))
	s.flushNonFinite()

	if got := s.State(); got != [2]float64{} {
		t.Fatalf("state after Inf=%v, want zero", got)
	}
}

func TestRBJEdgeGains(t *testing.T) {
	const sr = 48000.0

	for _, omega := range []float64{0.01, 0.3, 1.2, 2.5} {
		hp := HighpassOmega(omega, ButterworthQ)
		lp := LowpassOmega(omega, ButterworthQ)

		if g := cmplx.Abs(hp.Response(0, sr)); g > 1e-9 {
			t.Errorf("highpass(%v) DC gain=%v, want 0", omega, g)
		}

		if g := cmplx.Abs(hp.Response(sr/2, sr)); !almostEqual(g, 1, 1e-9) {
			t.Errorf("highpass(%v) Nyquist gain=%v, want 1", omega, g)
		}

		if g := cmplx.Abs(lp.Response(0, sr)); !almostEqual(g, 1, 1e-9) {
			t.Errorf("lowpass(%v) DC gain=%v, want 1", omega, g)
		}

		if g := cmplx.Abs(lp.Response(sr/2, sr)); g > 1e-9 {
			t.Errorf("lowpass(%v) Nyquist gain=%v, want 0", omega, g)
		}
	}
}

func TestMagnitudeDBMatchesResponse(t *testing.T) {
	const sr = 44100.0

	c := LowpassOmega(CalcOmega(6, sr), 0.9)

	for _, f := range []float64{20, 440, 622.25, 5000, 18000} {
		want := 20 * math.Log10(cmplx.Abs(c.Response(f, sr)))
		if got := c.MagnitudeDB(f, sr); !almostEqual(got, want, 1e-12) {
			t.Errorf("%v Hz: MagnitudeDB=%v, want %v", f, got, want)
		}
	}
}

func TestStereoRecoversFromNonFiniteInput(t *testing.T) {
	for _, glide := range []bool{false, true} {
		f := NewStereo()
		f.SetLowpass(0.2, ButterworthQ)
		f.Instantize()

		if glide {
			f.SetLowpass(0.3, ButterworthQ)
		}

		l := make([]float64, 32)
		r := make([]float64, 32)
		l[3] = math.NaN()
		r[5] = math.Inf(-1)
		f.ProcessBlock(l, r)

		for range 4 {
			for i := range l {
				l[i], r[i] = 0.5, -0.5
			}

			f.ProcessBlock(l, r)
		}

		for i := range l {
			if math.IsNaN(l[i]) || math.IsInf(l[i], 0) || math.IsNaN(r[i]) || math.IsInf(r[i], 0) {
				t.Fatalf("glide=%v sample %d still non-finite: %v %v", glide, i, l[i], r[i])
			}
		}

		// Four blocks of DC through a 0.2 rad lowpass have settled close to
		// unity gain.
		if !almostEqual(l[31], 0.5, 0.01) || !almostEqual(r[31], -0.5, 0.01) {
			t.Fatalf("glide=%v settled to %v %v, want ±0.5", glide, l[31], r[31])
		}
	}
}
