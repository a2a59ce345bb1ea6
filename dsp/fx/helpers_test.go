package fx

import "github.com/cwbudde/algo-synthfx/dsp/core"

var gainSpecs = []ParamSpec{
	{Name: "Gain", Unit: "x", Min: 0, Max: 2, Default: 1},
	{Name: "Offset", Unit: "", Min: -1, Max: 1, Default: 0, Deactivatable: true},
}

// gainEffect scales by Gain and adds Offset unless it is deactivated. It
// counts lifecycle calls so tests can observe them.
type gainEffect struct {
	params   *ParamSet
	inits    int
	suspends int
	blocks   int
}

func newGainEffect(ctx Context) (Effect, error) {
	params, err := ctx.Bind(gainSpecs)
	if err != nil {
		return nil, err
	}

	return &gainEffect{params: params}, nil
}

func (g *gainEffect) Init() { g.inits++; g.blocks = 0 }

func (g *gainEffect) Suspend() { g.suspends++; g.blocks = 0 }

func (g *gainEffect) Process(left, right []float64) {
	if !core.IsBlock(left, right) {
		return
	}

	gain := g.params.Clamped(0)

	offset := g.params.Clamped(1)
	if g.params.Deactivated(1) {
		offset = 0
	}

	for i := range left {
		left[i] = left[i]*gain + offset
		right[i] = right[i]*gain + offset
	}

	g.blocks++
}

func (g *gainEffect) Params() []ParamSpec { return gainSpecs }

func (g *gainEffect) Groups() []Group { return []Group{{Label: "Gain", Position: 1}} }

func testRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("gain", gainSpecs, newGainEffect)

	return r
}

func constBlock(v float64) []float64 {
	b := make([]float64, core.BlockSize)
	for i := range b {
		b[i] = v
	}

	return b
}
