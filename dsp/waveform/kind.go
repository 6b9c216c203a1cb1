package waveform

import (
	"fmt"
	"strings"
)

// Kind identifies a waveform shape.
type Kind int

const (
	// KindSine is amplitude * sin(2*pi*f*t + phase).
	KindSine Kind = iota
	// KindHalfWaveSine is the sine clamped to [0, +Inf).
	KindHalfWaveSine
	// KindFullWaveSine is the absolute value of the sine.
	KindFullWaveSine
	// KindUniformNoise draws uniformly from [-amplitude, amplitude).
	KindUniformNoise
	// KindNormalNoise draws standard-normal values scaled by amplitude.
	KindNormalNoise
	// KindSymmetricRectangular alternates between +amplitude and -amplitude.
	KindSymmetricRectangular
	// KindRectangular alternates between amplitude and 0.
	KindRectangular
	// KindTriangular ramps down to 0 at the flip point and back up.
	KindTriangular
	// KindUnitJump steps from 0 to amplitude after the flip instant.
	KindUnitJump
	// KindUnitPulse sets a single grid instant to amplitude.
	KindUnitPulse
	// KindUnitNoise is amplitude with a given probability, else 0.
	KindUnitNoise

	kindCount // sentinel for validation
)

var kindNames = [kindCount]string{
	"sine",
	"half-wave-sine",
	"full-wave-sine",
	"uniform-noise",
	"normal-noise",
	"symmetric-rectangular",
	"rectangular",
	"triangular",
	"unit-jump",
	"unit-pulse",
	"unit-noise",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Periodic reports whether the kind is parameterized by a frequency.
func (k Kind) Periodic() bool {
	switch k {
	case KindSine, KindHalfWaveSine, KindFullWaveSine,
		KindSymmetricRectangular, KindRectangular, KindTriangular:
		return true
	default:
		return false
	}
}

// UsesRandom reports whether sampling the kind consumes random draws.
func (k Kind) UsesRandom() bool {
	switch k {
	case KindUniformNoise, KindNormalNoise, KindUnitNoise:
		return true
	default:
		return false
	}
}

// ParseKind resolves a kind from its name. Matching ignores case,
// surrounding space, and accepts '_' in place of '-'.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown waveform kind %q", name)
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid waveform kind: %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
