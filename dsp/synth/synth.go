package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	"github.com/cwbudde/algo-wavesynth/dsp/grid"
	"github.com/cwbudde/algo-wavesynth/dsp/waveform"
)

// Synthesizer collects waveforms and samples them over a shared grid.
// It is not safe for concurrent use.
type Synthesizer struct {
	cfg       core.Config
	rng       *rand.Rand
	waveforms []waveform.Waveform
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed seeds the noise source for reproducible output.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRNG sets the noise source directly. A nil rng is ignored.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Synthesizer) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New creates a synthesizer from shared configuration options.
func New(opts ...core.Option) *Synthesizer {
	return NewWithOptions(opts)
}

// NewWithOptions creates a synthesizer with shared and synthesizer-specific
// options.
func NewWithOptions(coreOpts []core.Option, opts ...Option) *Synthesizer {
	s := &Synthesizer{cfg: core.ApplyOptions(coreOpts...)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Config returns the synthesizer configuration.
func (s *Synthesizer) Config() core.Config {
	return s.cfg
}

// Add registers w at the end of the collection.
func (s *Synthesizer) Add(w waveform.Waveform) {
	s.waveforms = append(s.waveforms, w)
}

// Len returns the number of registered waveforms.
func (s *Synthesizer) Len() int {
	return len(s.waveforms)
}

// Waveforms returns a copy of the registered waveforms in order.
func (s *Synthesizer) Waveforms() []waveform.Waveform {
	return append([]waveform.Waveform(nil), s.waveforms...)
}

// Duration returns the latest end time among the registered waveforms.
func (s *Synthesizer) Duration() (float64, error) {
	if len(s.waveforms) == 0 {
		return 0, core.ErrEmptyCollection
	}

	d := s.waveforms[0].End()
	for _, w := range s.waveforms[1:] {
		d = max(d, w.End())
	}
	return d, nil
}

// Grid returns the sampling instants over [start, start+duration).
func (s *Synthesizer) Grid() ([]float64, error) {
	d, err := s.Duration()
	if err != nil {
		return nil, err
	}
	return grid.Build(s.cfg.StartTime, s.cfg.StartTime+d, s.cfg.SampleRate)
}

// Synthesize samples the first registered waveform over the full grid.
// Later waveforms only contribute to the grid length.
func (s *Synthesizer) Synthesize() (core.Series, error) {
	return s.SynthesizeIndex(0)
}

// SynthesizeIndex samples the i-th registered waveform over the full grid.
func (s *Synthesizer) SynthesizeIndex(i int) (core.Series, error) {
	times, err := s.Grid()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(s.waveforms) {
		return nil, fmt.Errorf("%w: waveform index out of range: %d (have %d)", core.ErrInvalidParameter, i, len(s.waveforms))
	}
	return s.waveforms[i].Sample(times, s.rng), nil
}
