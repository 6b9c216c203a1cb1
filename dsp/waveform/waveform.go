package waveform

import (
	"fmt"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

// Params holds the creation-time parameters of a waveform. Only the fields
// relevant to a kind are read; New zeroes the rest.
type Params struct {
	// Frequency in Hz, periodic kinds only.
	Frequency float64
	// Duration in seconds.
	Duration float64
	// StartOffset in seconds relative to the global starting time.
	StartOffset float64
	// Amplitude is dimensionless.
	Amplitude float64
	// PhaseShift in radians, sine kinds only.
	PhaseShift float64
	// DutyCycle is the high fraction of each period in [0, 1],
	// rectangular and triangular kinds only.
	DutyCycle float64
	// FlipOffset in seconds after StartOffset, unit jump only.
	FlipOffset float64
	// TimeOffset in seconds after StartOffset, unit pulse only.
	TimeOffset float64
	// Probability of a high sample in [0, 1], unit noise only.
	Probability float64
}

// Waveform is an immutable waveform description.
type Waveform struct {
	kind   Kind
	params Params
}

// New validates p for kind and returns the waveform.
func New(kind Kind, p Params) (Waveform, error) {
	if !kind.Valid() {
		return Waveform{}, fmt.Errorf("%w: unknown waveform kind: %d", core.ErrInvalidParameter, int(kind))
	}
	p = p.relevant(kind)
	if err := p.validate(kind); err != nil {
		return Waveform{}, err
	}
	return Waveform{kind: kind, params: p}, nil
}

// NewSine creates a sine waveform.
func NewSine(freq, duration, startOffset, amplitude, phaseShift float64) (Waveform, error) {
	return New(KindSine, sineParams(freq, duration, startOffset, amplitude, phaseShift))
}

// NewHalfWaveSine creates a half-wave rectified sine waveform.
func NewHalfWaveSine(freq, duration, startOffset, amplitude, phaseShift float64) (Waveform, error) {
	return New(KindHalfWaveSine, sineParams(freq, duration, startOffset, amplitude, phaseShift))
}

// NewFullWaveSine creates a full-wave rectified sine waveform.
func NewFullWaveSine(freq, duration, startOffset, amplitude, phaseShift float64) (Waveform, error) {
	return New(KindFullWaveSine, sineParams(freq, duration, startOffset, amplitude, phaseShift))
}

// NewUniformNoise creates uniform noise on [-amplitude, amplitude).
func NewUniformNoise(duration, startOffset, amplitude float64) (Waveform, error) {
	return New(KindUniformNoise, Params{Duration: duration, StartOffset: startOffset, Amplitude: amplitude})
}

// NewNormalNoise creates standard-normal noise scaled by amplitude.
func NewNormalNoise(duration, startOffset, amplitude float64) (Waveform, error) {
	return New(KindNormalNoise, Params{Duration: duration, StartOffset: startOffset, Amplitude: amplitude})
}

// NewSymmetricRectangular creates a rectangular wave between +amplitude
// and -amplitude.
func NewSymmetricRectangular(freq, duration, startOffset, amplitude, dutyCycle float64) (Waveform, error) {
	return New(KindSymmetricRectangular, dutyParams(freq, duration, startOffset, amplitude, dutyCycle))
}

// NewRectangular creates a rectangular wave between amplitude and 0.
func NewRectangular(freq, duration, startOffset, amplitude, dutyCycle float64) (Waveform, error) {
	return New(KindRectangular, dutyParams(freq, duration, startOffset, amplitude, dutyCycle))
}

// NewTriangular creates a triangular wave whose minimum sits at
// period*dutyCycle. A zero duty cycle yields NaN at period boundaries.
func NewTriangular(freq, duration, startOffset, amplitude, dutyCycle float64) (Waveform, error) {
	return New(KindTriangular, dutyParams(freq, duration, startOffset, amplitude, dutyCycle))
}

// NewUnitJump creates a step to amplitude after startOffset+flipOffset.
func NewUnitJump(flipOffset, duration, startOffset, amplitude float64) (Waveform, error) {
	return New(KindUnitJump, Params{
		FlipOffset:  flipOffset,
		Duration:    duration,
		StartOffset: startOffset,
		Amplitude:   amplitude,
	})
}

// NewUnitPulse creates a single-sample pulse snapped to the grid instant
// nearest to startOffset+timeOffset.
func NewUnitPulse(timeOffset, duration, startOffset, amplitude float64) (Waveform, error) {
	return New(KindUnitPulse, Params{
		TimeOffset:  timeOffset,
		Duration:    duration,
		StartOffset: startOffset,
		Amplitude:   amplitude,
	})
}

// NewUnitNoise creates Bernoulli noise: amplitude with the given
// probability, 0 otherwise.
func NewUnitNoise(probability, duration, startOffset, amplitude float64) (Waveform, error) {
	return New(KindUnitNoise, Params{
		Probability: probability,
		Duration:    duration,
		StartOffset: startOffset,
		Amplitude:   amplitude,
	})
}

// Kind returns the waveform kind.
func (w Waveform) Kind() Kind {
	return w.kind
}

// Params returns a copy of the waveform parameters.
func (w Waveform) Params() Params {
	return w.params
}

// End returns StartOffset + Duration, the instant used to size the
// shared grid.
func (w Waveform) End() float64 {
	return w.params.StartOffset + w.params.Duration
}

func (w Waveform) String() string {
	p := w.params
	switch {
	case w.kind.Periodic():
		return fmt.Sprintf("%s(f=%gHz, a=%g, start=%gs, dur=%gs)", w.kind, p.Frequency, p.Amplitude, p.StartOffset, p.Duration)
	default:
		return fmt.Sprintf("%s(a=%g, start=%gs, dur=%gs)", w.kind, p.Amplitude, p.StartOffset, p.Duration)
	}
}

func sineParams(freq, duration, startOffset, amplitude, phaseShift float64) Params {
	return Params{
		Frequency:   freq,
		Duration:    duration,
		StartOffset: startOffset,
		Amplitude:   amplitude,
		PhaseShift:  phaseShift,
	}
}

func dutyParams(freq, duration, startOffset, amplitude, dutyCycle float64) Params {
	return Params{
		Frequency:   freq,
		Duration:    duration,
		StartOffset: startOffset,
		Amplitude:   amplitude,
		DutyCycle:   dutyCycle,
	}
}

func (p Params) relevant(kind Kind) Params {
	out := Params{
		Duration:    p.Duration,
		StartOffset: p.StartOffset,
		Amplitude:   p.Amplitude,
	}
	if kind.Periodic() {
		out.Frequency = p.Frequency
	}
	switch kind {
	case KindSine, KindHalfWaveSine, KindFullWaveSine:
		out.PhaseShift = p.PhaseShift
	case KindSymmetricRectangular, KindRectangular, KindTriangular:
		out.DutyCycle = p.DutyCycle
	case KindUnitJump:
		out.FlipOffset = p.FlipOffset
	case KindUnitPulse:
		out.TimeOffset = p.TimeOffset
	case KindUnitNoise:
		out.Probability = p.Probability
	}
	return out
}
