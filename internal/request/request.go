// Package request loads YAML documents that describe a synthesizer and the
// waveforms registered with it.
package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	"github.com/cwbudde/algo-wavesynth/dsp/synth"
	"github.com/cwbudde/algo-wavesynth/dsp/waveform"
)

// Document is the top-level request.
type Document struct {
	SampleRate float64    `yaml:"sample_rate"`
	StartTime  float64    `yaml:"start_time,omitempty"`
	Seed       *uint64    `yaml:"seed,omitempty"`
	Waveforms  []Waveform `yaml:"waveforms"`
}

// Waveform is one waveform entry. Fields a kind does not use are ignored.
type Waveform struct {
	Kind        string  `yaml:"kind"`
	Frequency   float64 `yaml:"frequency,omitempty"`
	Duration    float64 `yaml:"duration"`
	StartOffset float64 `yaml:"start_offset,omitempty"`
	Amplitude   float64 `yaml:"amplitude"`
	PhaseShift  float64 `yaml:"phase_shift,omitempty"`
	DutyCycle   float64 `yaml:"duty_cycle,omitempty"`
	FlipOffset  float64 `yaml:"flip_offset,omitempty"`
	TimeOffset  float64 `yaml:"time_offset,omitempty"`
	Probability float64 `yaml:"probability,omitempty"`
}

var errNoSampleRate = errors.New("sample_rate must be > 0")

// Load reads and parses the request file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a request document. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding request: empty document")
		}
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document-level fields. Waveform parameters are
// checked when the synthesizer is built.
func (d *Document) Validate() error {
	if d.SampleRate <= 0 || !core.IsFinite(d.SampleRate) {
		return fmt.Errorf("%w: %w: %f", core.ErrInvalidParameter, errNoSampleRate, d.SampleRate)
	}
	if !core.IsFinite(d.StartTime) {
		return fmt.Errorf("%w: start_time must be finite: %f", core.ErrInvalidParameter, d.StartTime)
	}
	for i, w := range d.Waveforms {
		if _, err := waveform.ParseKind(w.Kind); err != nil {
			return fmt.Errorf("waveform %d: %w", i, err)
		}
	}
	return nil
}

// Synthesizer builds a synthesizer with every waveform registered in
// document order.
func (d *Document) Synthesizer() (*synth.Synthesizer, error) {
	var opts []synth.Option
	if d.Seed != nil {
		opts = append(opts, synth.WithSeed(*d.Seed))
	}

	s := synth.NewWithOptions([]core.Option{
		core.WithSampleRate(d.SampleRate),
		core.WithStartTime(d.StartTime),
	}, opts...)

	for i, entry := range d.Waveforms {
		w, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("waveform %d (%s): %w", i, entry.Kind, err)
		}
		s.Add(w)
	}
	return s, nil
}

// Build converts the entry into a validated waveform.
func (w Waveform) Build() (waveform.Waveform, error) {
	kind, err := waveform.ParseKind(w.Kind)
	if err != nil {
		return waveform.Waveform{}, err
	}
	return waveform.New(kind, waveform.Params{
		Frequency:   w.Frequency,
		Duration:    w.Duration,
		StartOffset: w.StartOffset,
		Amplitude:   w.Amplitude,
		PhaseShift:  w.PhaseShift,
		DutyCycle:   w.DutyCycle,
		FlipOffset:  w.FlipOffset,
		TimeOffset:  w.TimeOffset,
		Probability: w.Probability,
	})
}

// FromWaveform describes an existing waveform as a request entry.
func FromWaveform(w waveform.Waveform) Waveform {
	p := w.Params()
	return Waveform{
		Kind:        w.Kind().String(),
		Frequency:   p.Frequency,
		Duration:    p.Duration,
		StartOffset: p.StartOffset,
		Amplitude:   p.Amplitude,
		PhaseShift:  p.PhaseShift,
		DutyCycle:   p.DutyCycle,
		FlipOffset:  p.FlipOffset,
		TimeOffset:  p.TimeOffset,
		Probability: p.Probability,
	}
}

// Encode writes d as YAML.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	return enc.Close()
}
