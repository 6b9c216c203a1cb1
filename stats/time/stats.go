package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

// Stats holds time-domain statistics of a series.
//
//nolint:revive
type Stats struct {
	Length        int
	Start         float64 // time of the first sample
	End           float64 // time of the last sample
	DC            float64 // mean
	DC_dB         float64
	RMS           float64
	RMS_dB        float64
	Max           float64
	MaxTime       float64
	Min           float64
	MinTime       float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	Range         float64 // max - min
	CrestFactor   float64 // peak / RMS, 0 when RMS is 0
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	Variance      float64 // population variance
	StdDev        float64
	ZeroCrossings int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{
		DC_dB:   math.Inf(-1),
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// FromSeries computes statistics over the values of s, with extreme
// positions reported as sample times.
func FromSeries(s core.Series) Stats {
	if len(s) == 0 {
		return emptyStats()
	}

	st, maxPos, minPos := calculate(s.Values())
	st.Start = s[0].Time
	st.End = s[len(s)-1].Time
	st.MaxTime = s[maxPos].Time
	st.MinTime = s[minPos].Time
	return st
}

// Calculate computes statistics over values. Times are reported as sample
// indices.
func Calculate(values []float64) Stats {
	if len(values) == 0 {
		return emptyStats()
	}

	st, maxPos, minPos := calculate(values)
	st.End = float64(len(values) - 1)
	st.MaxTime = float64(maxPos)
	st.MinTime = float64(minPos)
	return st
}

func calculate(values []float64) (st Stats, maxPos, minPos int) {
	n := len(values)
	nf := float64(n)

	squares := make([]float64, n)
	vecmath.MulBlock(squares, values, values)

	// Extremes skip non-finite values.
	var sum, energy float64
	maxVal, minVal := math.NaN(), math.NaN()
	seen := false
	for i, x := range values {
		sum += x
		energy += squares[i]

		if !core.IsFinite(x) {
			continue
		}
		if !seen || x > maxVal {
			maxVal, maxPos = x, i
		}
		if !seen || x < minVal {
			minVal, minPos = x, i
		}
		seen = true
	}

	mean := sum / nf
	var dev float64
	for _, x := range values {
		d := x - mean
		dev += d * d
	}
	variance := dev / nf

	rms := math.Sqrt(energy / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms != 0 {
		crest = peak / rms
	}

	st = Stats{
		Length:        n,
		DC:            mean,
		DC_dB:         ampTodB(mean),
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           maxVal,
		Min:           minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		Range:         maxVal - minVal,
		CrestFactor:   crest,
		Energy:        energy,
		Power:         energy / nf,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		ZeroCrossings: ZeroCrossings(values),
	}
	return st, maxPos, minPos
}

// ZeroCrossings counts sign changes between consecutive values. Zero
// values do not start or end a crossing.
func ZeroCrossings(values []float64) int {
	var count int
	for i := 1; i < len(values); i++ {
		if values[i-1]*values[i] < 0 {
			count++
		}
	}
	return count
}
