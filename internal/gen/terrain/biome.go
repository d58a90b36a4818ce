package terrain

// Biome classifies a terrain sample by elevation.
type Biome int

const (
	BiomeWater Biome = iota
	BiomeShore
	BiomeGrass
	BiomeRock
	BiomeSnow
)

// String returns the biome name.
func (b Biome) String() string {
	switch b {
	case BiomeWater:
		return "water"
	case BiomeShore:
		return "shore"
	case BiomeGrass:
		return "grass"
	case BiomeRock:
		return "rock"
	case BiomeSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Color returns the base vertex color for the biome.
func (b Biome) Color() [3]float32 {
	switch b {
	case BiomeWater:
		return [3]float32{0.75, 0.68, 0.5} // Sandy lake bed
	case BiomeShore:
		return [3]float32{0.82, 0.74, 0.55}
	case BiomeGrass:
		return [3]float32{0.32, 0.55, 0.25}
	case BiomeRock:
		return [3]float32{0.48, 0.45, 0.42}
	case BiomeSnow:
		return [3]float32{0.92, 0.94, 0.96}
	default:
		return [3]float32{1, 0, 1}
	}
}

// Classifier maps elevations to biomes using monotonic thresholds.
// Thresholds are derived from the water level and peak elevation so
// the bands scale with the terrain configuration.
type Classifier struct {
	shoreTop float32
	grassTop float32
	rockTop  float32

	waterLevel float32
	dither     float32 // Jitter amplitude near band borders
}

// NewClassifier derives biome thresholds from the field.
func NewClassifier(f *Field) *Classifier {
	span := f.MaxElevation() - f.WaterLevel()
	return &Classifier{
		waterLevel: f.WaterLevel(),
		shoreTop:   f.WaterLevel() + 0.06*span,
		grassTop:   f.WaterLevel() + 0.45*span,
		rockTop:    f.WaterLevel() + 0.78*span,
		dither:     0.02 * span,
	}
}

// Classify returns the biome for an elevation. Higher elevations never
// map to a lower band.
func (c *Classifier) Classify(elev float32) Biome {
	switch {
	case elev <= c.waterLevel:
		return BiomeWater
	case elev <= c.shoreTop:
		return BiomeShore
	case elev <= c.grassTop:
		return BiomeGrass
	case elev <= c.rockTop:
		return BiomeRock
	default:
		return BiomeSnow
	}
}

// ClassifyDithered jitters the elevation by jitter in [-1, 1] scaled to
// the dither amplitude, breaking up straight band borders. Away from a
// border the result matches Classify.
func (c *Classifier) ClassifyDithered(elev, jitter float32) Biome {
	return c.Classify(elev + jitter*c.dither)
}
