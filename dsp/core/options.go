package core

// ProcessorConfig carries the settings shared by sample-producing and
// sample-consuming components: the stream sample rate and the block size
// used when work is chunked.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig. An option that would leave the
// config invalid is ignored, so the result of applying options is always
// usable.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the config used when no options are given:
// 48 kHz, 1024-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the stream sample rate in Hz. Non-positive rates are
// ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the chunking block size in samples. Non-positive sizes
// are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions builds a config from the defaults and the given
// options, in order. Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
