package mix

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfx/dsp/lag"
)

func block(n int, f func(k int) float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = f(k)
	}

	return out
}

func TestCrossfadeEndpoints(t *testing.T) {
	dryL := block(32, func(k int) float64 { return math.Sin(float64(k)) })
	dryR := block(32, func(k int) float64 { return math.Cos(float64(k)) })
	wetL := block(32, func(k int) float64 { return float64(k) })
	wetR := block(32, func(k int) float64 { return -float64(k) })

	tests := []struct {
		name  string
		m     float64
		wantL []float64
		wantR []float64
	}{
		{name: "dry", m: 0, wantL: dryL, wantR: dryR},
		{name: "wet", m: 1, wantL: wetL, wantR: wetR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := lag.New(tt.m)
			outL := make([]float64, 32)
			outR := make([]float64, 32)

			Crossfade(&m, dryL, wetL, dryR, wetR, outL, outR)

			for k := range outL {
				if outL[k] != tt.wantL[k] || outR[k] != tt.wantR[k] {
					t.Fatalf("sample %d: got (%v,%v), want (%v,%v)", k, outL[k], outR[k], tt.wantL[k], tt.wantR[k])
				}
			}
		})
	}
}

func TestCrossfadeRampsAndAliases(t *testing.T) {
	const n = 4

	m := lag.New(0)
	m.SetTargetSmoothed(1)

	dryL := make([]float64, n)
	dryR := make([]float64, n)
	wetL := []float64{1, 1, 1, 1}
	wetR := []float64{2, 2, 2, 2}

	// Output into the dry buffers.
	Crossfade(&m, dryL, wetL, dryR, wetR, dryL, dryR)

	want := []float64{0.25, 0.5, 0.75, 1}
	for k := range want {
		if math.Abs(dryL[k]-want[k]) > 1e-15 || math.Abs(dryR[k]-2*want[k]) > 1e-15 {
			t.Fatalf("sample %d: got (%v,%v)", k, dryL[k], dryR[k])
		}
	}

	if m.Ramping() || m.Current() != 1 {
		t.Fatalf("lag not settled: current=%v", m.Current())
	}
}

func TestApplyWidth(t *testing.T) {
	tests := []struct {
		name  string
		w     float64
		check func(l0, r0, l, r float64) bool
	}{
		{
			name:  "unity",
			w:     1,
			check: func(l0, r0, l, r float64) bool { return near(l, l0) && near(r, r0) },
		},
		{
			name:  "mono",
			w:     0,
			check: func(l0, r0, l, r float64) bool { return near(l, r) && near(l, 0.5*(l0+r0)) },
		},
		{
			name:  "mirror",
			w:     -1,
			check: func(l0, r0, l, r float64) bool { return near(l, r0) && near(r, l0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l0 := block(32, func(k int) float64 { return math.Sin(0.3 * float64(k)) })
			r0 := block(32, func(k int) float64 { return 0.5 * math.Cos(0.7*float64(k)) })
			l := append([]float64(nil), l0...)
			r := append([]float64(nil), r0...)

			w := lag.New(tt.w)
			ApplyWidth(l, r, &w)

			for k := range l {
				if !tt.check(l0[k], r0[k], l[k], r[k]) {
					t.Fatalf("sample %d: in (%v,%v) out (%v,%v)", k, l0[k], r0[k], l[k], r[k])
				}
			}
		})
	}
}

func TestApplyWidthRamp(t *testing.T) {
	l := []float64{1, 1, 1, 1}
	r := []float64{-1, -1, -1, -1}

	w := lag.New(0)
	w.SetTargetSmoothed(1)
	ApplyWidth(l, r, &w)

	want := []float64{0.25, 0.5, 0.75, 1}
	for k := range want {
		if !near(l[k], want[k]) || !near(r[k], -want[k]) {
			t.Fatalf("sample %d: got (%v,%v)", k, l[k], r[k])
		}
	}
}

func TestMultiply(t *testing.T) {
	a := []float64{1, -2, 3, 0.5}
	b := []float64{2, 2, -1, 4}
	dst := make([]float64, 4)

	Multiply(dst, a, b)

	for k, want := range []float64{2, -4, -3, 2} {
		if dst[k] != want {
			t.Fatalf("dst[%d]=%v, want %v", k, dst[k], want)
		}
	}

	Multiply(a, a, b)
	if a[1] != -4 {
		t.Fatalf("aliased multiply: a[1]=%v, want -4", a[1])
	}
}

func TestGain(t *testing.T) {
	src := []float64{1, -0.5, 0.25}
	dst := make([]float64, 3)

	Gain(dst, src, 2)

	for k, want := range []float64{2, -1, 0.5} {
		if dst[k] != want {
			t.Fatalf("dst[%d]=%v, want %v", k, dst[k], want)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12
}

func BenchmarkCrossfade(b *testing.B) {
	dry := make([]float64, 32)
	wet := make([]float64, 32)
	out := make([]float64, 32)
	m := lag.New(0)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		m.SetTargetSmoothed(float64(i % 2))
		Crossfade(&m, dry, wet, dry, wet, out, out)
	}
}
