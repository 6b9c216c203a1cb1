package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

func ExampleApplyOptions() {
	cfg := core.ApplyOptions(
		core.WithSampleRate(44100),
		core.WithStartTime(1.5),
	)

	fmt.Printf("sampleRate=%.0f start=%.1f\n", cfg.SampleRate, cfg.StartTime)

	// Output:
	// sampleRate=44100 start=1.5
}

func ExampleZip() {
	s := core.Zip([]float64{0, 0.5}, []float64{1, -1})
	fmt.Println(s.Times(), s.Values())

	// Output:
	// [0 0.5] [1 -1]
}
