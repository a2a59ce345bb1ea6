package modulation

import (
	"testing"

	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

const testSampleRate = 48000.0

func setParam(t *testing.T, params *fx.ParamSet, id int, v float64) {
	t.Helper()

	if err := params.Set(id, v); err != nil {
		t.Fatalf("Set(%d, %v) error = %v", id, v, err)
	}
}
