// Package synth drives waveform synthesis over a shared time grid.
//
// A [Synthesizer] owns an ordered collection of waveforms. The signal
// duration is the latest end time across the collection; the grid spans
// [start, start+duration) at the configured sample rate. [Synthesizer.Synthesize]
// samples only the first registered waveform over that grid. The others
// still extend the grid but are never combined into the output.
package synth
