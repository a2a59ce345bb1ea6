package core

// DefaultSampleRate is the sample rate used when none is configured.
const DefaultSampleRate = 48000.0

// ProcessorConfig defines common DSP processing settings. The block size is
// the compile-time constant BlockSize and is not configurable.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for real-time use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleRateInv returns 1/SampleRate.
func (c ProcessorConfig) SampleRateInv() float64 {
	return 1 / c.SampleRate
}

// BlockDuration returns the real-time budget of one block in seconds.
func (c ProcessorConfig) BlockDuration() float64 {
	return BlockSize / c.SampleRate
}
