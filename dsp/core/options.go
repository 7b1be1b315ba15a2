package core

// ProcessorConfig defines the sampling grid shared by synthesis and transform.
type ProcessorConfig struct {
	SampleInterval float64
	Samples        int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the stock grid: 1024 samples, 0.1 apart.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleInterval: 0.1,
		Samples:        1024,
	}
}

// WithSampleInterval sets the time step between samples.
func WithSampleInterval(dt float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if dt > 0 {
			cfg.SampleInterval = dt
		}
	}
}

// WithSamples sets the number of samples.
func WithSamples(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.Samples = n
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
