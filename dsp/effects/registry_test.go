package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryTypes(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{Flanger, PitchRing, RingModulator}, r.Types())
}

func TestEveryEffectCreatesAndProcesses(t *testing.T) {
	r := DefaultRegistry()

	for _, typ := range r.Types() {
		t.Run(typ, func(t *testing.T) {
			for _, sr := range []float64{44100, 48000, 96000, 192000} {
				e, params, err := r.New(typ, sr)
				require.NoError(t, err)
				require.NotNil(t, e)
				require.Equal(t, len(e.Params()), params.Len())

				e.Init()

				left := testutil.Noise(1, 1, testutil.Blocks(64))
				right := testutil.Sine(220, sr, 0.8, testutil.Blocks(64))
				outL, outR := testutil.Render(e, left, right)

				testutil.RequireFinite(t, "left", outL)
				testutil.RequireFinite(t, "right", outR)

				e.Suspend()
			}
		})
	}
}

func TestEveryEffectSilentAfterInit(t *testing.T) {
	r := DefaultRegistry()

	for _, typ := range r.Types() {
		e, _, err := r.New(typ, 48000)
		require.NoError(t, err, typ)

		e.Init()

		silence := make([]float64, testutil.Blocks(16))
		outL, outR := testutil.Render(e, silence, silence)

		testutil.RequireNearlyEqual(t, typ+" left", outL, silence, 0)
		testutil.RequireNearlyEqual(t, typ+" right", outR, silence, 0)
	}
}

func TestEveryEffectInitAndProcessDoNotAllocate(t *testing.T) {
	r := DefaultRegistry()

	for _, typ := range r.Types() {
		e, _, err := r.New(typ, 48000)
		require.NoError(t, err, typ)

		left := testutil.Noise(5, 0.5, core.BlockSize)
		right := testutil.Sine(330, 48000, 0.5, core.BlockSize)

		allocs := testing.AllocsPerRun(100, func() {
			e.Init()
			e.Process(left, right)
		})
		assert.Zero(t, allocs, "%s allocates %v per Init+Process", typ, allocs)
	}
}

func TestRackProcessDoesNotAllocate(t *testing.T) {
	rack, err := fx.NewRack(DefaultRegistry(), fx.WithSlots(3))
	require.NoError(t, err)
	require.NoError(t, rack.Assign(0, PitchRing))
	require.NoError(t, rack.Assign(1, Flanger))
	require.NoError(t, rack.Assign(2, RingModulator))

	left := testutil.Sine(220, 48000, 0.5, core.BlockSize)
	right := testutil.Sine(220, 48000, 0.5, core.BlockSize)

	allocs := testing.AllocsPerRun(100, func() {
		_ = rack.Process(left, right)
	})
	assert.Zero(t, allocs)
}

func TestEveryEffectRecoversFromNonFiniteInput(t *testing.T) {
	r := DefaultRegistry()

	for _, typ := range r.Types() {
		e, _, err := r.New(typ, 48000)
		require.NoError(t, err, typ)

		e.Init()

		left := testutil.Sine(220, 48000, 0.5, core.BlockSize)
		right := testutil.Sine(220, 48000, 0.5, core.BlockSize)
		left[3] = math.NaN()
		right[7] = math.Inf(1)
		e.Process(left, right)

		n := testutil.Blocks(200)
		outL, outR := testutil.Render(e,
			testutil.Sine(220, 48000, 0.5, n),
			testutil.Sine(220, 48000, 0.5, n))

		testutil.RequireFinite(t, typ+" left", outL)
		testutil.RequireFinite(t, typ+" right", outR)
	}
}

func TestEveryEffectGroupsCoverParams(t *testing.T) {
	r := DefaultRegistry()

	for _, typ := range r.Types() {
		e, _, err := r.New(typ, 48000)
		require.NoError(t, err, typ)

		groups := e.Groups()
		require.NotEmpty(t, groups, typ)

		for _, spec := range e.Params() {
			assert.GreaterOrEqual(t, spec.Group, 0, "%s/%s", typ, spec.Name)
			assert.Less(t, spec.Group, len(groups), "%s/%s", typ, spec.Name)
		}
	}
}

func TestRackWithDefaultRegistry(t *testing.T) {
	rack, err := fx.NewRack(DefaultRegistry(), fx.WithSlots(3))
	require.NoError(t, err)

	require.NoError(t, rack.Assign(0, PitchRing))
	require.NoError(t, rack.Assign(1, Flanger))
	require.NoError(t, rack.Assign(2, RingModulator))

	params, err := rack.Params(0)
	require.NoError(t, err)
	require.NoError(t, params.SetByName("Pitch", 7))
	require.NoError(t, params.SetByName("Mix", 0.25))

	require.NoError(t, rack.Copy(0, 2))

	typ, err := rack.Type(2)
	require.NoError(t, err)
	assert.Equal(t, PitchRing, typ)

	copied, err := rack.Params(2)
	require.NoError(t, err)
	assert.Equal(t, params.Values(), copied.Values())

	require.NoError(t, rack.Swap(0, 1))

	typ, err = rack.Type(0)
	require.NoError(t, err)
	assert.Equal(t, Flanger, typ)

	left := testutil.Noise(2, 0.5, core.BlockSize)
	right := testutil.Noise(3, 0.5, core.BlockSize)

	for range 100 {
		require.NoError(t, rack.Process(left, right))
	}

	testutil.RequireFinite(t, "left", left)
	testutil.RequireFinite(t, "right", right)

	require.ErrorIs(t, rack.Assign(0, "chorus"), fx.ErrUnknownEffect)
}
