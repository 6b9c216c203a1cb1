// Package time summarizes synthesized series in the time domain.
//
// The statistics back the CLI summaries and the plot annotations, and give
// tests a compact way to check amplitude bounds of noise waveforms.
package time
