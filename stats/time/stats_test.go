package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
	"github.com/cwbudde/algo-wavesynth/dsp/grid"
	"github.com/cwbudde/algo-wavesynth/dsp/waveform"
	"github.com/cwbudde/algo-wavesynth/internal/testutil"
)

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 {
		t.Fatalf("Length = %d, want 0", s.Length)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) || !math.IsInf(s.DC_dB, -1) {
		t.Fatalf("dB fields must be -Inf for empty input: %+v", s)
	}
	if FromSeries(nil).Length != 0 {
		t.Fatal("FromSeries(nil) must be empty")
	}
}

func TestCalculateSquareWave(t *testing.T) {
	s := Calculate([]float64{1, -1, 1, -1})

	if s.Length != 4 {
		t.Fatalf("Length = %d, want 4", s.Length)
	}
	if s.DC != 0 {
		t.Fatalf("DC = %v, want 0", s.DC)
	}
	if s.RMS != 1 || s.Peak != 1 || s.CrestFactor != 1 {
		t.Fatalf("RMS=%v Peak=%v Crest=%v, want 1", s.RMS, s.Peak, s.CrestFactor)
	}
	if s.Energy != 4 || s.Power != 1 {
		t.Fatalf("Energy=%v Power=%v, want 4 and 1", s.Energy, s.Power)
	}
	if s.Range != 2 {
		t.Fatalf("Range = %v, want 2", s.Range)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", s.ZeroCrossings)
	}
	if s.Variance != 1 || s.StdDev != 1 {
		t.Fatalf("Variance=%v StdDev=%v, want 1", s.Variance, s.StdDev)
	}
	if s.MaxTime != 0 || s.MinTime != 1 || s.End != 3 {
		t.Fatalf("MaxTime=%v MinTime=%v End=%v", s.MaxTime, s.MinTime, s.End)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]float64, 8))
	if s.CrestFactor != 0 {
		t.Fatalf("CrestFactor = %v, want 0", s.CrestFactor)
	}
	if !math.IsInf(s.RMS_dB, -1) {
		t.Fatalf("RMS_dB = %v, want -Inf", s.RMS_dB)
	}
}

func TestZeroCrossingsIgnoresZeros(t *testing.T) {
	if got := ZeroCrossings([]float64{1, 0, -1, 0, 1}); got != 0 {
		t.Fatalf("ZeroCrossings() = %d, want 0", got)
	}
	if got := ZeroCrossings([]float64{1}); got != 0 {
		t.Fatalf("ZeroCrossings() = %d, want 0", got)
	}
}

func TestFromSeriesUsesTimes(t *testing.T) {
	s := core.Zip([]float64{2, 2.5, 3, 3.5}, []float64{0, 4, -2, 1})
	st := FromSeries(s)

	if st.Start != 2 || st.End != 3.5 {
		t.Fatalf("Start=%v End=%v, want 2 and 3.5", st.Start, st.End)
	}
	if st.Max != 4 || st.MaxTime != 2.5 {
		t.Fatalf("Max=%v at %v, want 4 at 2.5", st.Max, st.MaxTime)
	}
	if st.Min != -2 || st.MinTime != 3 {
		t.Fatalf("Min=%v at %v, want -2 at 3", st.Min, st.MinTime)
	}
}

func TestSineRMS(t *testing.T) {
	times, err := grid.Build(0, 1, 1000)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	w, err := waveform.NewSine(10, 1, 0, 2, 0)
	if err != nil {
		t.Fatalf("NewSine() error = %v", err)
	}

	st := FromSeries(w.Sample(times, nil))
	if !core.NearlyEqual(st.RMS, 2/math.Sqrt2, 1e-9) {
		t.Fatalf("RMS = %v, want %v", st.RMS, 2/math.Sqrt2)
	}
	if math.Abs(st.DC) > 1e-9 {
		t.Fatalf("DC = %v, want 0", st.DC)
	}
}

func TestUniformNoiseRange(t *testing.T) {
	const amp = 0.5
	times, err := grid.Build(0, 1, 10000)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	w, err := waveform.NewUniformNoise(1, 0, amp)
	if err != nil {
		t.Fatalf("NewUniformNoise() error = %v", err)
	}

	st := FromSeries(w.Sample(times, testutil.FixedRNG(21)))
	if st.Max > amp || st.Min < -amp {
		t.Fatalf("range [%v, %v] exceeds amplitude %v", st.Min, st.Max, amp)
	}
	// Uniform on [-a, a) has standard deviation a/sqrt(3).
	if want := amp / math.Sqrt(3); math.Abs(st.StdDev-want) > 0.01 {
		t.Fatalf("StdDev = %v, want near %v", st.StdDev, want)
	}
}

func TestCalculateSkipsNonFiniteExtremes(t *testing.T) {
	st := Calculate([]float64{math.NaN(), 0.5, 1, 0.5, math.Inf(1)})

	if st.Max != 1 || st.MaxTime != 2 {
		t.Fatalf("Max=%v at %v, want 1 at 2", st.Max, st.MaxTime)
	}
	if st.Min != 0.5 || st.MinTime != 1 {
		t.Fatalf("Min=%v at %v, want 0.5 at 1", st.Min, st.MinTime)
	}
	if st.Peak != 1 || st.Range != 0.5 {
		t.Fatalf("Peak=%v Range=%v, want 1 and 0.5", st.Peak, st.Range)
	}
}

func TestCalculateAllNaN(t *testing.T) {
	st := Calculate([]float64{math.NaN(), math.NaN()})
	if !math.IsNaN(st.Max) || !math.IsNaN(st.Min) {
		t.Fatalf("Max=%v Min=%v, want NaN", st.Max, st.Min)
	}
}

func TestTriangularZeroDutyExtremes(t *testing.T) {
	times, err := grid.Build(0, 1, 4)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	w, err := waveform.NewTriangular(1, 1, 0, 3, 0)
	if err != nil {
		t.Fatalf("NewTriangular() error = %v", err)
	}

	st := FromSeries(w.Sample(times, nil))
	if !core.NearlyEqual(st.Max, 2.25, 1e-12) || st.MaxTime != 0.75 {
		t.Fatalf("Max=%v at %v, want 2.25 at 0.75", st.Max, st.MaxTime)
	}
	if !core.NearlyEqual(st.Min, 0.75, 1e-12) || st.MinTime != 0.25 {
		t.Fatalf("Min=%v at %v, want 0.75 at 0.25", st.Min, st.MinTime)
	}
}
