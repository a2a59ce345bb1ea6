package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestCalcOmega(t *testing.T) {
	sr := 48000.0
	if got, want := CalcOmega(0, sr), 2*math.Pi*440/sr; !almostEqual(got, want, 1e-15) {
		t.Fatalf("CalcOmega(0)=%v, want %v", got, want)
	}

	if got, want := CalcOmega(12, sr), 2*CalcOmega(0, sr); !almostEqual(got, want, 1e-12) {
		t.Fatalf("CalcOmega(12)=%v, want %v", got, want)
	}

	if got := CalcOmega(0, 0); got != maxOmega {
		t.Fatalf("CalcOmega with zero rate=%v, want %v", got, maxOmega)
	}
}

func TestHighpassOmega_Response(t *testing.T) {
	sr := 48000.0
	c := HighpassOmega(CalcOmega(0, sr), ButterworthQ)

	if db := c.MagnitudeDB(440, sr); !almostEqual(db, -3.0103, 1e-3) {
		t.Fatalf("cutoff magnitude=%v dB, want -3.01", db)
	}

	if db := c.MagnitudeDB(55, sr); db > -30 {
		t.Fatalf("stopband magnitude=%v dB, want < -30", db)
	}

	if db := c.MagnitudeDB(8000, sr); math.Abs(db) > 0.01 {
		t.Fatalf("passband magnitude=%v dB, want ~0", db)
	}
}

func TestLowpassOmega_Response(t *testing.T) {
	sr := 48000.0
	c := LowpassOmega(CalcOmega(12, sr), ButterworthQ)

	if db := c.MagnitudeDB(880, sr); !almostEqual(db, -3.0103, 1e-3) {
		t.Fatalf("cutoff magnitude=%v dB, want -3.01", db)
	}

	if db := c.MagnitudeDB(14080, sr); db > -30 {
		t.Fatalf("stopband magnitude=%v dB, want < -30", db)
	}

	if db := c.MagnitudeDB(20, sr); math.Abs(db) > 0.01 {
		t.Fatalf("passband magnitude=%v dB, want ~0", db)
	}
}

func TestDesign_ExtremeInputsStayStable(t *testing.T) {
	omegas := []float64{-1, 0, 1e-9, 0.5, math.Pi, 10, math.NaN(), math.Inf(1), math.Inf(-1)}
	qs := []float64{0, -1, 0.001, ButterworthQ, 40, math.NaN(), math.Inf(1)}

	for _, w := range omegas {
		for _, q := range qs {
			for name, c := range map[string]Coefficients{
				"highpass": HighpassOmega(w, q),
				"lowpass":  LowpassOmega(w, q),
			} {
				for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("%s(%v, %v) produced non-finite %+v", name, w, q, c)
					}
				}

				for _, p := range c.Poles() {
					if cmplx.Abs(p) >= 1 {
						t.Fatalf("%s(%v, %v) pole %v outside unit circle", name, w, q, p)
					}
				}
			}
		}
	}
}
