package modulation

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/internal/testutil"
	"github.com/cwbudde/algo-synthfx/measure/tone"
)

func newRingModulator(t *testing.T, set map[int]float64) *RingModulator {
	t.Helper()

	r, err := NewRingModulator(fx.Context{SampleRate: testSampleRate})
	if err != nil {
		t.Fatalf("NewRingModulator() error = %v", err)
	}

	for id, v := range set {
		setParam(t, r.params, id, v)
	}

	r.Init()

	return r
}

func TestRingModulatorSidebands(t *testing.T) {
	r := newRingModulator(t, map[int]float64{RingModCarrier: 440})

	// 0.1 s holds whole periods of 560, 1000 and 1440 Hz.
	n := int(testSampleRate / 10)
	in := testutil.Sine(1000, testSampleRate, 0.5, n)
	outL, outR := testutil.Render(r, in, in)

	for _, tc := range []struct {
		freq float64
		want float64
	}{
		{freq: 560, want: 0.25},
		{freq: 1440, want: 0.25},
		{freq: 1000, want: 0},
		{freq: 440, want: 0},
	} {
		for ch, out := range [][]float64{outL, outR} {
			got, err := tone.Goertzel(out, tc.freq, testSampleRate)
			if err != nil {
				t.Fatal(err)
			}

			if math.Abs(got-tc.want) > 1e-3 {
				t.Fatalf("channel %d: %.0f Hz amplitude = %.5f, want %.5f", ch, tc.freq, got, tc.want)
			}
		}
	}
}

func TestRingModulatorZeroMixPassesDry(t *testing.T) {
	r := newRingModulator(t, map[int]float64{RingModMix: 0})

	inL := testutil.Noise(31, 1, 8*core.BlockSize)
	inR := testutil.Noise(32, 1, 8*core.BlockSize)
	outL, outR := testutil.Render(r, inL, inR)

	for i := range outL {
		if outL[i] != inL[i] || outR[i] != inR[i] {
			t.Fatalf("sample %d modified", i)
		}
	}
}

func TestRingModulatorMixRampsWithoutSteps(t *testing.T) {
	r := newRingModulator(t, map[int]float64{RingModMix: 0})

	in := make([]float64, core.BlockSize)
	for i := range in {
		in[i] = 1
	}

	setParam(t, r.params, RingModMix, 1)

	left := append([]float64(nil), in...)
	right := append([]float64(nil), in...)
	r.Process(left, right)

	// The first sample is still mostly dry; the last is fully wet.
	if math.Abs(left[0]-1) > 0.1 {
		t.Fatalf("first sample = %v, want close to dry", left[0])
	}

	if got, want := left[len(left)-1], r.car[len(left)-1]; math.Abs(got-want) > 1e-12 {
		t.Fatalf("last sample = %v, want carrier %v", got, want)
	}
}

func BenchmarkRingModulatorProcess(b *testing.B) {
	r, err := NewRingModulator(fx.Context{SampleRate: testSampleRate})
	if err != nil {
		b.Fatal(err)
	}

	r.Init()

	left := testutil.Noise(33, 1, core.BlockSize)
	right := testutil.Noise(34, 1, core.BlockSize)

	b.ReportAllocs()

	for b.Loop() {
		r.Process(left, right)
	}
}
