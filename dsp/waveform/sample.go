package waveform

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

// Sample evaluates the waveform at every instant in times and returns one
// sample per instant, in order. Noise kinds consume one draw from rng per
// instant; a nil rng is replaced by a randomly seeded PCG source.
func (w Waveform) Sample(times []float64, rng *rand.Rand) core.Series {
	values := make([]float64, len(times))

	switch {
	case w.kind == KindUnitPulse:
		w.pulse(times, values)
	case w.kind.UsesRandom():
		if rng == nil {
			rng = newRNG()
		}
		for i := range values {
			values[i] = w.draw(rng)
		}
	default:
		for i, t := range times {
			values[i] = w.valueAt(t)
		}
	}

	return core.Zip(times, values)
}

// valueAt evaluates the deterministic, pointwise kinds.
func (w Waveform) valueAt(t float64) float64 {
	p := w.params

	switch w.kind {
	case KindSine:
		return sine(p, t)
	case KindHalfWaveSine:
		return core.ClampNonNegative(sine(p, t))
	case KindFullWaveSine:
		return math.Abs(sine(p, t))
	case KindSymmetricRectangular:
		return symmetricRectangular(p, t)
	case KindRectangular:
		return core.ClampNonNegative(symmetricRectangular(p, t))
	case KindTriangular:
		return triangular(p, t)
	case KindUnitJump:
		if t > p.StartOffset+p.FlipOffset {
			return p.Amplitude
		}
		return 0
	default:
		return 0
	}
}

// draw produces one value for the random kinds.
func (w Waveform) draw(rng *rand.Rand) float64 {
	a := w.params.Amplitude

	switch w.kind {
	case KindUniformNoise:
		return a * (2*rng.Float64() - 1)
	case KindNormalNoise:
		return rng.NormFloat64() * a
	case KindUnitNoise:
		if rng.Float64() < w.params.Probability {
			return a
		}
		return 0
	default:
		return 0
	}
}

// pulse marks the instant nearest to the pulse target. Only a strictly
// smaller distance replaces the current best, so the earliest instant wins
// a tie.
func (w Waveform) pulse(times, values []float64) {
	target := w.params.StartOffset + w.params.TimeOffset

	best := -1
	bestDiff := math.MaxFloat64
	for i, t := range times {
		d := math.Abs(target - t)
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}

	if best >= 0 {
		values[best] = w.params.Amplitude
	}
}

func sine(p Params, t float64) float64 {
	return p.Amplitude * math.Sin(2*math.Pi*p.Frequency*t+p.PhaseShift)
}

func symmetricRectangular(p Params, t float64) float64 {
	period := 1 / p.Frequency
	flip := period * p.DutyCycle
	if math.Mod(t, period) > flip {
		return -p.Amplitude
	}
	return p.Amplitude
}

// triangular falls linearly from amplitude at the period start to 0 at the
// flip point, then rises back to amplitude at the period end.
func triangular(p Params, t float64) float64 {
	period := 1 / p.Frequency
	flip := period * p.DutyCycle
	offset := math.Mod(t, period)

	var fraction float64
	if offset > flip {
		fraction = (offset - flip) / (period - flip)
	} else {
		fraction = 1 - offset/flip
	}
	return fraction * p.Amplitude
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
