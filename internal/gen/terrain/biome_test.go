package terrain

import "testing"

func TestClassifyMonotonic(t *testing.T) {
	f := testField()
	c := NewClassifier(f)

	prev := BiomeWater
	for i := 0; i <= 1000; i++ {
		elev := f.MaxElevation() * float32(i) / 1000
		b := c.Classify(elev)
		if b < prev {
			t.Fatalf("biome decreased with elevation: %v -> %v at %g", prev, b, elev)
		}
		prev = b
	}
}

func TestClassifyBands(t *testing.T) {
	f := testField()
	c := NewClassifier(f)

	if b := c.Classify(0); b != BiomeWater {
		t.Errorf("expected water at elevation 0, got %v", b)
	}
	if b := c.Classify(f.WaterLevel()); b != BiomeWater {
		t.Errorf("expected water at water level, got %v", b)
	}
	if b := c.Classify(f.MaxElevation()); b != BiomeSnow {
		t.Errorf("expected snow at peak elevation, got %v", b)
	}
}

func TestClassifyCoversAllBands(t *testing.T) {
	f := testField()
	c := NewClassifier(f)

	seen := make(map[Biome]bool)
	for i := 0; i <= 1000; i++ {
		elev := f.MaxElevation() * float32(i) / 1000
		seen[c.Classify(elev)] = true
	}

	for _, b := range []Biome{BiomeWater, BiomeShore, BiomeGrass, BiomeRock, BiomeSnow} {
		if !seen[b] {
			t.Errorf("biome %v never produced across the elevation range", b)
		}
	}
}

func TestClassifyDitheredMatchesAwayFromBorders(t *testing.T) {
	f := testField()
	c := NewClassifier(f)

	// Mid-band elevations must classify identically with any jitter
	shoreMid := (f.WaterLevel() + c.shoreTop) / 2
	grassMid := (c.shoreTop + c.grassTop) / 2
	rockMid := (c.grassTop + c.rockTop) / 2

	for _, elev := range []float32{grassMid, rockMid, shoreMid} {
		want := c.Classify(elev)
		for _, j := range []float32{-1, -0.5, 0, 0.5, 1} {
			if got := c.ClassifyDithered(elev, j); got != want {
				t.Errorf("dither with jitter %g changed mid-band biome at %g: %v -> %v",
					j, elev, want, got)
			}
		}
	}
}

func TestClassifyDitheredNearBorder(t *testing.T) {
	f := testField()
	c := NewClassifier(f)

	// At a band border, opposite jitter extremes pick opposite sides
	border := c.grassTop
	low := c.ClassifyDithered(border, -1)
	high := c.ClassifyDithered(border, 1)
	if low != BiomeGrass {
		t.Errorf("expected grass just below border, got %v", low)
	}
	if high != BiomeRock {
		t.Errorf("expected rock just above border, got %v", high)
	}
}

func TestBiomeString(t *testing.T) {
	tests := []struct {
		b    Biome
		want string
	}{
		{BiomeWater, "water"},
		{BiomeShore, "shore"},
		{BiomeGrass, "grass"},
		{BiomeRock, "rock"},
		{BiomeSnow, "snow"},
		{Biome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Biome(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}
