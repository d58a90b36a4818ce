package noise

import "testing"

func TestValueDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for _, p := range [][2]float32{{0, 0}, {1.5, 2.5}, {-3.2, 7.7}, {100.1, -54.9}} {
		va := a.Value(p[0], p[1])
		vb := b.Value(p[0], p[1])
		if va != vb {
			t.Errorf("same seed produced different values at (%g, %g): %g vs %g", p[0], p[1], va, vb)
		}
	}
}

func TestValueSeedChangesField(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	const samples = 100
	for i := 0; i < samples; i++ {
		x := float32(i) * 0.37
		y := float32(i) * 0.91
		if a.Value(x, y) == b.Value(x, y) {
			same++
		}
	}
	if same == samples {
		t.Error("different seeds produced identical fields")
	}
}

func TestValueRange(t *testing.T) {
	s := New(7)

	for i := 0; i < 1000; i++ {
		x := float32(i%37) * 0.173
		y := float32(i%53) * 0.291
		v := s.Value(x, y)
		if v < 0 || v > 1 {
			t.Fatalf("value %g at (%g, %g) outside [0, 1]", v, x, y)
		}
	}
}

func TestValueContinuity(t *testing.T) {
	s := New(11)

	// Adjacent samples across a lattice boundary must not jump
	const step = 0.001
	prev := s.Value(0.99, 0.5)
	for x := float32(0.99); x < 1.01; x += step {
		v := s.Value(x, 0.5)
		if diff := v - prev; diff > 0.05 || diff < -0.05 {
			t.Fatalf("discontinuity at x=%g: %g -> %g", x, prev, v)
		}
		prev = v
	}
}

func TestFBMRange(t *testing.T) {
	s := New(99)

	for i := 0; i < 500; i++ {
		x := float32(i) * 0.013
		y := float32(i) * 0.029
		v := s.FBM(x, y, 5, 2.0, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("fbm value %g at (%g, %g) outside [0, 1]", v, x, y)
		}
	}
}

func TestFBMDeterministic(t *testing.T) {
	a := New(5)
	b := New(5)

	if va, vb := a.FBM(3.7, 8.1, 6, 2.1, 0.45), b.FBM(3.7, 8.1, 6, 2.1, 0.45); va != vb {
		t.Errorf("same seed produced different fbm values: %g vs %g", va, vb)
	}
}

func TestFBMSingleOctaveMatchesValue(t *testing.T) {
	s := New(13)

	x, y := float32(2.3), float32(4.1)
	if got, want := s.FBM(x, y, 1, 2.0, 0.5), s.Value(x, y); got != want {
		t.Errorf("single octave fbm %g differs from raw value %g", got, want)
	}
}
