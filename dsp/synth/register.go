package synth

import "github.com/cwbudde/algo-wavesynth/dsp/waveform"

func (s *Synthesizer) add(w waveform.Waveform, err error) error {
	if err != nil {
		return err
	}
	s.Add(w)
	return nil
}

// AddSine registers a sine waveform.
func (s *Synthesizer) AddSine(freq, duration, startOffset, amplitude, phaseShift float64) error {
	return s.add(waveform.NewSine(freq, duration, startOffset, amplitude, phaseShift))
}

// AddHalfWaveSine registers a half-wave rectified sine waveform.
func (s *Synthesizer) AddHalfWaveSine(freq, duration, startOffset, amplitude, phaseShift float64) error {
	return s.add(waveform.NewHalfWaveSine(freq, duration, startOffset, amplitude, phaseShift))
}

// AddFullWaveSine registers a full-wave rectified sine waveform.
func (s *Synthesizer) AddFullWaveSine(freq, duration, startOffset, amplitude, phaseShift float64) error {
	return s.add(waveform.NewFullWaveSine(freq, duration, startOffset, amplitude, phaseShift))
}

// AddUniformNoise registers uniform noise.
func (s *Synthesizer) AddUniformNoise(duration, startOffset, amplitude float64) error {
	return s.add(waveform.NewUniformNoise(duration, startOffset, amplitude))
}

// AddNormalNoise registers normal noise.
func (s *Synthesizer) AddNormalNoise(duration, startOffset, amplitude float64) error {
	return s.add(waveform.NewNormalNoise(duration, startOffset, amplitude))
}

// AddRectangular registers a rectangular wave between amplitude and 0.
func (s *Synthesizer) AddRectangular(freq, duration, startOffset, amplitude, dutyCycle float64) error {
	return s.add(waveform.NewRectangular(freq, duration, startOffset, amplitude, dutyCycle))
}

// AddSymmetricRectangular registers a rectangular wave between
// +amplitude and -amplitude.
func (s *Synthesizer) AddSymmetricRectangular(freq, duration, startOffset, amplitude, dutyCycle float64) error {
	return s.add(waveform.NewSymmetricRectangular(freq, duration, startOffset, amplitude, dutyCycle))
}

// AddTriangular registers a triangular wave.
func (s *Synthesizer) AddTriangular(freq, duration, startOffset, amplitude, dutyCycle float64) error {
	return s.add(waveform.NewTriangular(freq, duration, startOffset, amplitude, dutyCycle))
}

// AddUnitJump registers a unit step.
func (s *Synthesizer) AddUnitJump(flipOffset, duration, startOffset, amplitude float64) error {
	return s.add(waveform.NewUnitJump(flipOffset, duration, startOffset, amplitude))
}

// AddUnitPulse registers a single-sample pulse.
func (s *Synthesizer) AddUnitPulse(timeOffset, duration, startOffset, amplitude float64) error {
	return s.add(waveform.NewUnitPulse(timeOffset, duration, startOffset, amplitude))
}

// AddUnitNoise registers Bernoulli noise.
func (s *Synthesizer) AddUnitNoise(probability, duration, startOffset, amplitude float64) error {
	return s.add(waveform.NewUnitNoise(probability, duration, startOffset, amplitude))
}
