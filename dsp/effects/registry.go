package effects

import (
	"github.com/cwbudde/algo-synthfx/dsp/effects/modulation"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

// Registered effect type names.
const (
	PitchRing     = "pitchring"
	Flanger       = "flanger"
	RingModulator = "ringmod"
)

// DefaultRegistry returns a new registry holding every effect in this
// module.
func DefaultRegistry() *fx.Registry {
	r := fx.NewRegistry()
	r.MustRegister(PitchRing, modulation.PitchRingParams(), factory(modulation.NewPitchRing))
	r.MustRegister(Flanger, modulation.FlangerParams(), factory(modulation.NewFlanger))
	r.MustRegister(RingModulator, modulation.RingModulatorParams(), factory(modulation.NewRingModulator))

	return r
}

// factory adapts a concrete constructor so a failed build yields a nil
// Effect rather than a typed nil pointer.
func factory[E fx.Effect](build func(fx.Context) (E, error)) fx.Factory {
	return func(ctx fx.Context) (fx.Effect, error) {
		e, err := build(ctx)
		if err != nil {
			return nil, err
		}

		return e, nil
	}
}
