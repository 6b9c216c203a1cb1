package core

import "math"

const (
	defaultSampleRate = 1000
	defaultStartTime  = 0
)

// Config defines the shared synthesis settings.
type Config struct {
	// SampleRate is the grid sampling frequency in Hz.
	SampleRate float64
	// StartTime is the global time origin in seconds.
	StartTime float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults used when no option is given.
func DefaultConfig() Config {
	return Config{
		SampleRate: defaultSampleRate,
		StartTime:  defaultStartTime,
	}
}

// WithSampleRate sets the grid sampling frequency. The value is stored as
// given; a non-positive or non-finite rate fails with ErrInvalidParameter
// when the grid is built.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithStartTime sets the global starting time. Non-finite values fail when
// the grid is built.
func WithStartTime(start float64) Option {
	return func(cfg *Config) {
		cfg.StartTime = start
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
