package waveform

import (
	"fmt"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

func (p Params) validate(kind Kind) error {
	if err := requireFinite(kind, "duration", p.Duration); err != nil {
		return err
	}
	if err := requireFinite(kind, "start offset", p.StartOffset); err != nil {
		return err
	}
	if err := requireFinite(kind, "amplitude", p.Amplitude); err != nil {
		return err
	}

	if kind.Periodic() && (p.Frequency <= 0 || !core.IsFinite(p.Frequency)) {
		return fmt.Errorf("%w: %s frequency must be > 0: %f", core.ErrInvalidParameter, kind, p.Frequency)
	}

	switch kind {
	case KindSine, KindHalfWaveSine, KindFullWaveSine:
		return requireFinite(kind, "phase shift", p.PhaseShift)
	case KindSymmetricRectangular, KindRectangular, KindTriangular:
		return requireUnit(kind, "duty cycle", p.DutyCycle)
	case KindUnitJump:
		return requireFinite(kind, "flip offset", p.FlipOffset)
	case KindUnitPulse:
		return requireFinite(kind, "time offset", p.TimeOffset)
	case KindUnitNoise:
		return requireUnit(kind, "probability", p.Probability)
	}
	return nil
}

func requireFinite(kind Kind, name string, v float64) error {
	if !core.IsFinite(v) {
		return fmt.Errorf("%w: %s %s must be finite: %f", core.ErrInvalidParameter, kind, name, v)
	}
	return nil
}

// requireUnit rejects values outside [0, 1]; NaN fails both comparisons.
func requireUnit(kind Kind, name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s %s must be in [0,1]: %f", core.ErrInvalidParameter, kind, name, v)
	}
	return nil
}
