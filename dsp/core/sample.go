package core

// Sample is one synthesized point. Time is absolute, measured from the
// global time origin rather than from a waveform's own start offset.
type Sample struct {
	Time  float64
	Value float64
}

// Series is an ordered sequence of samples with ascending times.
type Series []Sample

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s)
}

// Times returns the sample instants as a new slice.
func (s Series) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Time
	}
	return out
}

// Values returns the sample values as a new slice.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Zip pairs times with values. The shorter slice bounds the result.
func Zip(times, values []float64) Series {
	n := min(len(times), len(values))
	out := make(Series, n)
	for i := range out {
		out[i] = Sample{Time: times[i], Value: values[i]}
	}
	return out
}
