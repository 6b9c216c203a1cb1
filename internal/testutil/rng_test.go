package testutil

import "testing"

func TestFixedRNGReproducible(t *testing.T) {
	a := FixedRNG(42)
	b := FixedRNG(42)
	for i := 0; i < 16; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestFixedRNGDifferentSeeds(t *testing.T) {
	a := FixedRNG(1)
	b := FixedRNG(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical draws")
	}
}

func TestCountEqual(t *testing.T) {
	if got := CountEqual([]float64{0, 1, 0, 2}, 0); got != 2 {
		t.Fatalf("CountEqual() = %d, want 2", got)
	}
}
