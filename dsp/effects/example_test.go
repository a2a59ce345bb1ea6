package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthfx/dsp/effects"
)

func ExampleDefaultRegistry() {
	r := effects.DefaultRegistry()

	for _, typ := range r.Types() {
		specs, _ := r.Specs(typ)
		fmt.Printf("%s: %d params, first %q\n", typ, len(specs), specs[0].Name)
	}
	// Output:
	// flanger: 6 params, first "Rate"
	// pitchring: 8 params, first "Threshold"
	// ringmod: 3 params, first "Carrier"
}
