package waveform

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

func TestEndTime(t *testing.T) {
	tests := []struct {
		name string
		new  func() (Waveform, error)
		want float64
	}{
		{name: "sine", new: func() (Waveform, error) { return NewSine(1, 2, 0.5, 1, 0) }, want: 2.5},
		{name: "half-wave", new: func() (Waveform, error) { return NewHalfWaveSine(1, 2, 0.5, 1, 0) }, want: 2.5},
		{name: "full-wave", new: func() (Waveform, error) { return NewFullWaveSine(1, 2, 0.5, 1, 0) }, want: 2.5},
		{name: "uniform", new: func() (Waveform, error) { return NewUniformNoise(3, 1, 1) }, want: 4},
		{name: "normal", new: func() (Waveform, error) { return NewNormalNoise(3, 1, 1) }, want: 4},
		{name: "symmetric-rect", new: func() (Waveform, error) { return NewSymmetricRectangular(2, 1, 0.25, 1, 0.5) }, want: 1.25},
		{name: "rect", new: func() (Waveform, error) { return NewRectangular(2, 1, 0.25, 1, 0.5) }, want: 1.25},
		{name: "triangular", new: func() (Waveform, error) { return NewTriangular(2, 1, 0.25, 1, 0.5) }, want: 1.25},
		{name: "jump", new: func() (Waveform, error) { return NewUnitJump(0.5, 1, 2, 1) }, want: 3},
		{name: "pulse", new: func() (Waveform, error) { return NewUnitPulse(0.5, 1, 2, 1) }, want: 3},
		{name: "unit-noise", new: func() (Waveform, error) { return NewUnitNoise(0.5, 1, 2, 1) }, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.new()
			if err != nil {
				t.Fatalf("constructor error = %v", err)
			}
			if got := w.End(); got != tt.want {
				t.Fatalf("End() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		new  func() (Waveform, error)
	}{
		{name: "zero frequency", new: func() (Waveform, error) { return NewSine(0, 1, 0, 1, 0) }},
		{name: "negative frequency", new: func() (Waveform, error) { return NewTriangular(-1, 1, 0, 1, 0.5) }},
		{name: "inf frequency", new: func() (Waveform, error) { return NewRectangular(math.Inf(1), 1, 0, 1, 0.5) }},
		{name: "probability above one", new: func() (Waveform, error) { return NewUnitNoise(1.5, 1, 0, 1) }},
		{name: "negative probability", new: func() (Waveform, error) { return NewUnitNoise(-0.1, 1, 0, 1) }},
		{name: "nan probability", new: func() (Waveform, error) { return NewUnitNoise(math.NaN(), 1, 0, 1) }},
		{name: "duty above one", new: func() (Waveform, error) { return NewSymmetricRectangular(1, 1, 0, 1, 1.01) }},
		{name: "nan amplitude", new: func() (Waveform, error) { return NewUniformNoise(1, 0, math.NaN()) }},
		{name: "inf duration", new: func() (Waveform, error) { return NewNormalNoise(math.Inf(1), 0, 1) }},
		{name: "nan flip", new: func() (Waveform, error) { return NewUnitJump(math.NaN(), 1, 0, 1) }},
		{name: "unknown kind", new: func() (Waveform, error) { return New(Kind(-1), Params{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.new(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestBoundaryParametersAccepted(t *testing.T) {
	if _, err := NewUnitNoise(0, 1, 0, 1); err != nil {
		t.Fatalf("probability 0: %v", err)
	}
	if _, err := NewUnitNoise(1, 1, 0, 1); err != nil {
		t.Fatalf("probability 1: %v", err)
	}
	if _, err := NewTriangular(1, 1, 0, 1, 0); err != nil {
		t.Fatalf("duty cycle 0: %v", err)
	}
	if _, err := NewRectangular(1, 1, 0, 1, 1); err != nil {
		t.Fatalf("duty cycle 1: %v", err)
	}
}

func TestNewKeepsOnlyRelevantParams(t *testing.T) {
	w, err := New(KindUnitJump, Params{
		Frequency:   10,
		Duration:    1,
		Amplitude:   2,
		FlipOffset:  0.5,
		Probability: 3,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := Params{Duration: 1, Amplitude: 2, FlipOffset: 0.5}
	if got := w.Params(); got != want {
		t.Fatalf("Params() = %+v, want %+v", got, want)
	}
}

func TestString(t *testing.T) {
	w, err := NewSine(440, 1, 0, 0.5, 0)
	if err != nil {
		t.Fatalf("NewSine() error = %v", err)
	}
	if got, want := w.String(), "sine(f=440Hz, a=0.5, start=0s, dur=1s)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	n, err := NewUnitNoise(0.5, 2, 1, 1)
	if err != nil {
		t.Fatalf("NewUnitNoise() error = %v", err)
	}
	if got, want := n.String(), "unit-noise(a=1, start=1s, dur=2s)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
