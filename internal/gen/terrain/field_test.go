package terrain

import (
	"testing"

	"github.com/Faultbox/skyglide/internal/config"
)

func testField() *Field {
	cfg := config.Default()
	return NewField(cfg.World, cfg.Terrain)
}

func TestHeightAtDeterministic(t *testing.T) {
	a := testField()
	b := testField()

	for _, p := range [][2]float32{{0, 0}, {50, -30}, {-120, 80}, {199, 199}} {
		ha := a.HeightAt(p[0], p[1])
		hb := b.HeightAt(p[0], p[1])
		if ha != hb {
			t.Errorf("same seed gave different heights at (%g, %g): %g vs %g", p[0], p[1], ha, hb)
		}
	}
}

func TestHeightAtBounds(t *testing.T) {
	f := testField()
	cfg := config.Default().Terrain

	for i := -100; i <= 100; i += 7 {
		for j := -100; j <= 100; j += 7 {
			h := f.HeightAt(float32(i)*1.9, float32(j)*1.9)
			if h < cfg.FloorClamp {
				t.Fatalf("height %g at (%d, %d) below floor clamp %g", h, i, j, cfg.FloorClamp)
			}
			if h > cfg.MaxElevation {
				t.Fatalf("height %g at (%d, %d) above max elevation %g", h, i, j, cfg.MaxElevation)
			}
		}
	}
}

func TestBasinCenterBelowWater(t *testing.T) {
	f := testField()

	// Well inside the basin radius the floor blend dominates, so the
	// terrain must sit below the water plane
	for _, p := range [][2]float32{{0, 0}, {10, 10}, {-20, 15}, {30, -30}} {
		h := f.HeightAt(p[0], p[1])
		if h >= f.WaterLevel() {
			t.Errorf("basin interior at (%g, %g) has height %g, want below water level %g",
				p[0], p[1], h, f.WaterLevel())
		}
	}
}

func TestBasinWeightFalloff(t *testing.T) {
	f := testField()
	cfg := config.Default().Terrain

	if w := f.basinWeight(0, 0); w != 1 {
		t.Errorf("expected weight 1 at center, got %g", w)
	}
	if w := f.basinWeight(cfg.BasinRadius, 0); w != 1 {
		t.Errorf("expected weight 1 at radius, got %g", w)
	}

	far := cfg.BasinRadius + cfg.BasinBlend
	if w := f.basinWeight(far, 0); w != 0 {
		t.Errorf("expected weight 0 past transition band, got %g", w)
	}

	// Weight decreases monotonically across the band
	prev := float32(1)
	for i := 1; i <= 10; i++ {
		d := cfg.BasinRadius + cfg.BasinBlend*float32(i)/10
		w := f.basinWeight(d, 0)
		if w > prev {
			t.Fatalf("basin weight increased across band: %g -> %g at d=%g", prev, w, d)
		}
		prev = w
	}
}

func TestHeightOutsideBasinUnaffected(t *testing.T) {
	cfg := config.Default()
	f := NewField(cfg.World, cfg.Terrain)

	// Same terrain settings but with the basin disabled
	flat := cfg.Terrain
	flat.BasinRadius = 0
	flat.BasinBlend = 0
	g := NewField(cfg.World, flat)

	d := cfg.Terrain.BasinRadius + cfg.Terrain.BasinBlend + 10
	if ha, hb := f.HeightAt(d, 0), g.HeightAt(d, 0); ha != hb {
		t.Errorf("basin modified height outside its influence: %g vs %g", ha, hb)
	}
}
