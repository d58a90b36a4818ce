// Package terrain builds the procedural height field, biome classification
// and render mesh for the scenery.
package terrain

import (
	gomath "math"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/gen/noise"
)

// Field samples terrain elevation at arbitrary world positions.
// Sampling is pure and safe for concurrent use.
type Field struct {
	src        *noise.Source
	cfg        config.TerrainConfig
	waterLevel float32
}

// NewField creates a height field from terrain settings and world seed.
func NewField(worldCfg config.WorldConfig, terrainCfg config.TerrainConfig) *Field {
	return &Field{
		src:        noise.New(worldCfg.Seed),
		cfg:        terrainCfg,
		waterLevel: worldCfg.WaterLevel,
	}
}

// WaterLevel returns the elevation of the water plane.
func (f *Field) WaterLevel() float32 {
	return f.waterLevel
}

// MaxElevation returns the upper bound of HeightAt.
func (f *Field) MaxElevation() float32 {
	return f.cfg.MaxElevation
}

// HeightAt returns terrain elevation at world position (x, z).
func (f *Field) HeightAt(x, z float32) float32 {
	n := f.src.FBM(x*f.cfg.Frequency, z*f.cfg.Frequency,
		f.cfg.Octaves, f.cfg.Lacunarity, f.cfg.Persistence)

	// Raising to a power sharpens peaks and flattens valleys
	h := f.cfg.MaxElevation * powf(n, f.cfg.Exponent)

	// Blend toward the basin floor near the world center so the
	// water plane always has a carved bowl to fill
	if w := f.basinWeight(x, z); w > 0 {
		h = h*(1-w) + f.cfg.BasinFloor*w
	}

	return clampf(h, f.cfg.FloorClamp, f.cfg.MaxElevation)
}

// basinWeight is 1 inside the basin radius and falls smoothly to 0
// across the transition band.
func (f *Field) basinWeight(x, z float32) float32 {
	d := sqrtf(x*x + z*z)
	if d <= f.cfg.BasinRadius {
		return 1
	}
	if f.cfg.BasinBlend <= 0 || d >= f.cfg.BasinRadius+f.cfg.BasinBlend {
		return 0
	}
	t := (d - f.cfg.BasinRadius) / f.cfg.BasinBlend
	return 1 - t*t*(3-2*t)
}

func powf(x, y float32) float32 {
	return float32(gomath.Pow(float64(x), float64(y)))
}

func sqrtf(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
