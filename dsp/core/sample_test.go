package core

import "testing"

func TestSeriesAccessors(t *testing.T) {
	s := Series{{Time: 0, Value: 1}, {Time: 0.5, Value: -1}}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	times := s.Times()
	values := s.Values()
	if times[0] != 0 || times[1] != 0.5 {
		t.Fatalf("Times() = %v", times)
	}
	if values[0] != 1 || values[1] != -1 {
		t.Fatalf("Values() = %v", values)
	}

	times[0] = 42
	if s[0].Time != 0 {
		t.Fatal("Times() must return a copy")
	}
}

func TestZip(t *testing.T) {
	s := Zip([]float64{0, 1, 2}, []float64{5, 6})
	if len(s) != 2 {
		t.Fatalf("len = %d, want 2", len(s))
	}
	if s[1] != (Sample{Time: 1, Value: 6}) {
		t.Fatalf("s[1] = %+v", s[1])
	}
}
