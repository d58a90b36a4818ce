// Package vegetation scatters foliage instances across the terrain by
// rejection sampling.
package vegetation

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
)

// Instance is one placed foliage item. A rejected slot keeps Scale 0
// and is skipped at render time.
type Instance struct {
	Position [3]float32
	Scale    float32
	Rotation float32 // Rotation around Y in radians
}

// Active reports whether the slot holds a real placement.
func (i Instance) Active() bool {
	return i.Scale > 0
}

// Scatter places cfg.InstanceCount instances across the field. Each slot
// gets up to cfg.MaxAttempts uniform samples; a sample is accepted when
// the terrain there sits inside the elevation band and is gentle enough.
// Slots whose attempts all fail stay degenerate, so the returned slice
// always has exactly cfg.InstanceCount entries.
func Scatter(field *terrain.Field, size float32, cfg config.VegetationConfig, rng *rand.Rand) []Instance {
	instances := make([]Instance, cfg.InstanceCount)
	half := size / 2

	for slot := range instances {
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			x := rng.Float32()*size - half
			z := rng.Float32()*size - half

			h := field.HeightAt(x, z)
			if h < cfg.MinElevation || h >= cfg.MaxElevation {
				continue
			}
			if slopeAt(field, x, z) > cfg.MaxSlope {
				continue
			}

			instances[slot] = Instance{
				Position: [3]float32{x, h, z},
				Scale:    cfg.MinScale + rng.Float32()*(cfg.MaxScale-cfg.MinScale),
				Rotation: rng.Float32() * 2 * gomath.Pi,
			}
			break
		}
	}

	return instances
}

// slopeAt estimates terrain steepness as rise over run from central
// differences.
func slopeAt(field *terrain.Field, x, z float32) float32 {
	const step = 1.0
	dx := field.HeightAt(x+step, z) - field.HeightAt(x-step, z)
	dz := field.HeightAt(x, z+step) - field.HeightAt(x, z-step)
	return float32(gomath.Sqrt(float64(dx*dx+dz*dz))) / (2 * step)
}
