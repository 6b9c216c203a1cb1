package core

import "errors"

var (
	// ErrInvalidParameter reports malformed construction or grid parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyCollection reports synthesis without any registered waveform.
	ErrEmptyCollection = errors.New("no waveforms registered")
)
