package lag_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfx/dsp/lag"
)

func ExampleLag_Ramp() {
	l := lag.New(0)
	l.SetTargetSmoothed(1)

	buf := make([]float64, 4)
	l.Ramp(buf)

	fmt.Println(buf)
	// Output:
	// [0.25 0.5 0.75 1]
}
