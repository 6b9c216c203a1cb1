package grid

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavesynth/dsp/core"
)

// Count returns the number of instants Build would produce.
func Count(start, end, frequency float64) (int, error) {
	if err := validate(start, end, frequency); err != nil {
		return 0, err
	}
	return count(start, end, 1/frequency), nil
}

// Build returns the sampling instants start + i/frequency for i in
// [0, floor((end-start)*frequency)). The result is empty when end <= start.
func Build(start, end, frequency float64) ([]float64, error) {
	n, err := Count(start, end, frequency)
	if err != nil {
		return nil, err
	}

	step := 1 / frequency
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

func count(start, end, step float64) int {
	n := math.Floor((end - start) / step)
	if n <= 0 {
		return 0
	}
	return int(n)
}

func validate(start, end, frequency float64) error {
	if frequency <= 0 || !core.IsFinite(frequency) {
		return fmt.Errorf("%w: grid frequency must be > 0: %f", core.ErrInvalidParameter, frequency)
	}
	if !core.IsFinite(start) || !core.IsFinite(end) {
		return fmt.Errorf("%w: grid bounds must be finite: [%f, %f)", core.ErrInvalidParameter, start, end)
	}
	return nil
}
