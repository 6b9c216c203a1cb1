// Package waveform describes synthesizable signal shapes and samples them
// over arbitrary time instants.
//
// A [Waveform] is an immutable value pairing a [Kind] with its [Params].
// The set of kinds is closed; [Waveform.Sample] dispatches over it in a
// single switch. Sample instants are absolute: a waveform's start offset
// only moves its local features (flip point, pulse target) and its end
// time, it never clips the grid it is sampled on.
//
// Noise kinds draw from the *rand.Rand passed to [Waveform.Sample], one
// draw per instant in grid order, so a seeded generator gives
// reproducible output.
package waveform
