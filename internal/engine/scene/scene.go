// Package scene provides GPU upload and drawing for the generated world.
package scene

import gomath "math"

const pi = gomath.Pi

func sinf(x float32) float32  { return float32(gomath.Sin(float64(x))) }
func cosf(x float32) float32  { return float32(gomath.Cos(float64(x))) }
func acosf(x float32) float32 { return float32(gomath.Acos(float64(x))) }

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Environment holds the shared lighting and fog parameters passed to
// every renderer each frame.
type Environment struct {
	LightDir [3]float32
	Ambient  [3]float32
	FogColor [3]float32
	FogNear  float32
	FogFar   float32
}

// DefaultEnvironment returns the scene lighting used by the demo.
func DefaultEnvironment() Environment {
	return Environment{
		LightDir: [3]float32{-0.4, -0.8, -0.3},
		Ambient:  [3]float32{0.45, 0.45, 0.5},
		FogColor: [3]float32{0.62, 0.72, 0.85},
		FogNear:  120,
		FogFar:   380,
	}
}
