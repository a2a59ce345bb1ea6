package cli

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// Signal kinds understood by Generate.
const (
	SignalSine    = "sine"
	SignalNoise   = "noise"
	SignalSweep   = "sweep"
	SignalImpulse = "impulse"
	SignalSilence = "silence"
)

// SignalKinds lists the accepted -signal values.
func SignalKinds() []string {
	return []string{SignalSine, SignalNoise, SignalSweep, SignalImpulse, SignalSilence}
}

// SignalConfig describes a generated stereo test signal.
type SignalConfig struct {
	Kind       string
	Freq       float64 // sine frequency, or sweep start frequency
	Amplitude  float64
	Seconds    float64
	SampleRate float64
	Seed       uint64
}

// Processor returns the processing config for cfg.SampleRate. Unlike
// core.WithSampleRate it rejects a bad rate instead of falling back to the
// default, since the signal is generated at that rate.
func (cfg SignalConfig) Processor() (core.ProcessorConfig, error) {
	if !(cfg.SampleRate > 0) || math.IsInf(cfg.SampleRate, 0) {
		return core.ProcessorConfig{}, fmt.Errorf("sample rate must be > 0 and finite: %f", cfg.SampleRate)
	}

	return core.ApplyProcessorOptions(core.WithSampleRate(cfg.SampleRate)), nil
}

// Generate returns left and right channels for cfg. Sine and sweep are
// identical on both channels; noise is independent per channel.
func Generate(cfg SignalConfig) ([]float64, []float64, error) {
	if _, err := cfg.Processor(); err != nil {
		return nil, nil, err
	}

	if !(cfg.Seconds > 0) || math.IsInf(cfg.Seconds, 0) {
		return nil, nil, fmt.Errorf("duration must be > 0 and finite: %f", cfg.Seconds)
	}

	n := int(math.Ceil(cfg.Seconds * cfg.SampleRate))
	left := make([]float64, n)
	right := make([]float64, n)
	amp := cfg.Amplitude
	nyquist := cfg.SampleRate / 2

	switch cfg.Kind {
	case SignalSine:
		if !(cfg.Freq > 0 && cfg.Freq < nyquist) {
			return nil, nil, fmt.Errorf("sine frequency must be in (0, %g): %f", nyquist, cfg.Freq)
		}

		step := 2 * math.Pi * cfg.Freq / cfg.SampleRate
		for i := range left {
			left[i] = amp * math.Sin(step*float64(i))
		}

		copy(right, left)
	case SignalSweep:
		if !(cfg.Freq > 0 && cfg.Freq < nyquist) {
			return nil, nil, fmt.Errorf("sweep start frequency must be in (0, %g): %f", nyquist, cfg.Freq)
		}

		// Exponential sweep from Freq up to 0.9 Nyquist over the duration.
		f1 := 0.9 * nyquist
		if f1 <= cfg.Freq {
			f1 = cfg.Freq
		}

		rate := math.Log(f1/cfg.Freq) / cfg.Seconds

		phase := 0.0
		for i := range left {
			t := float64(i) / cfg.SampleRate
			left[i] = amp * math.Sin(phase)
			phase += 2 * math.Pi * cfg.Freq * math.Exp(rate*t) / cfg.SampleRate
		}

		copy(right, left)
	case SignalNoise:
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		for i := range left {
			left[i] = amp * (2*rng.Float64() - 1)
			right[i] = amp * (2*rng.Float64() - 1)
		}
	case SignalImpulse:
		left[0] = amp
		right[0] = amp
	case SignalSilence:
	default:
		return nil, nil, fmt.Errorf("unknown signal %q (want one of %v)", cfg.Kind, SignalKinds())
	}

	return left, right, nil
}

// ValidSignal reports whether kind is accepted by Generate.
func ValidSignal(kind string) bool {
	return slices.Contains(SignalKinds(), kind)
}
