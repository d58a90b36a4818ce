package game

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
)

func TestFindTreeSpotHonorsHeightBand(t *testing.T) {
	cfg := config.Default()
	field := terrain.NewField(cfg.World, cfg.Terrain)
	size := cfg.World.Size
	half := size / 2
	minH := field.WaterLevel() + 2
	maxH := field.MaxElevation() * 0.5

	for seed := int64(1); seed <= 8; seed++ {
		// Replay the sample sequence to learn whether any candidate passes
		replay := rand.New(rand.NewSource(seed))
		hasCandidate := false
		for i := 0; i < 64; i++ {
			x := replay.Float32()*size - half
			z := replay.Float32()*size - half
			h := field.HeightAt(x, z)
			if h > minH && h < maxH {
				hasCandidate = true
			}
		}

		spot := findTreeSpot(field, size, rand.New(rand.NewSource(seed)))
		if hasCandidate && (spot.Y <= minH || spot.Y >= maxH) {
			t.Errorf("seed %d: tree spot height %g outside (%g, %g)", seed, spot.Y, minH, maxH)
		}
	}
}

func TestFindTreeSpotDeterministic(t *testing.T) {
	cfg := config.Default()
	field := terrain.NewField(cfg.World, cfg.Terrain)
	size := cfg.World.Size

	a := findTreeSpot(field, size, rand.New(rand.NewSource(5)))
	b := findTreeSpot(field, size, rand.New(rand.NewSource(5)))
	if a != b {
		t.Errorf("tree spot differs between identical runs: %+v vs %+v", a, b)
	}
}
