package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfx/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	// Process an impulse.
	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		fmt.Printf("y[%d] = %.6f\n", i, s.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleHighpassOmega() {
	sr := 48000.0
	c := biquad.HighpassOmega(biquad.CalcOmega(0, sr), biquad.ButterworthQ)

	for _, freq := range []float64{55, 440, 3520} {
		fmt.Printf("%5.0f Hz: %+.1f dB\n", freq, c.MagnitudeDB(freq, sr))
	}
	// Output:
	//    55 Hz: -36.1 dB
	//   440 Hz: -3.0 dB
	//  3520 Hz: -0.0 dB
}

func ExampleStereo_ProcessBlock() {
	f := biquad.NewStereo()
	f.SetLowpass(biquad.CalcOmega(-24, 48000), biquad.ButterworthQ)
	f.Instantize()

	left := make([]float64, 32)
	right := make([]float64, 32)
	for i := range left {
		left[i], right[i] = 1, -1
	}

	// A DC step settles towards unity through a lowpass.
	for range 200 {
		for i := range left {
			left[i], right[i] = 1, -1
		}
		f.ProcessBlock(left, right)
	}

	fmt.Printf("%.3f %.3f\n", left[31], right[31])
	// Output:
	// 1.000 -1.000
}
