// Package noise implements seeded value noise and fractal Brownian motion.
//
// A Source is a pure function of its seed and the sample position, so the
// same source always produces the same field. Sampling is safe for
// concurrent use.
package noise

import gomath "math"

// Source generates deterministic 2D value noise for a fixed seed.
type Source struct {
	seed uint32
}

// New returns a noise source for the given seed.
func New(seed int64) *Source {
	return &Source{seed: uint32(seed)}
}

// hash mixes lattice coordinates and the seed into a pseudo-random word.
func (s *Source) hash(x, y int32) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + s.seed*2147483647
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// lattice returns the noise value at an integer lattice point in [0, 1].
func (s *Source) lattice(x, y int32) float32 {
	return float32(s.hash(x, y)) / float32(gomath.MaxUint32)
}

// smooth applies smoothstep easing to an interpolation parameter.
func smooth(t float32) float32 {
	return t * t * (3 - 2*t)
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Value samples smoothly interpolated value noise at (x, y).
// The result is in [0, 1].
func (s *Source) Value(x, y float32) float32 {
	x0 := int32(gomath.Floor(float64(x)))
	y0 := int32(gomath.Floor(float64(y)))

	tx := smooth(x - float32(x0))
	ty := smooth(y - float32(y0))

	v00 := s.lattice(x0, y0)
	v10 := s.lattice(x0+1, y0)
	v01 := s.lattice(x0, y0+1)
	v11 := s.lattice(x0+1, y0+1)

	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// FBM sums octaves of value noise with increasing frequency and
// decreasing amplitude. The result is normalized to [0, 1].
func (s *Source) FBM(x, y float32, octaves int, lacunarity, persistence float32) float32 {
	var (
		total     float32
		maxAmp    float32
		amplitude float32 = 1
		frequency float32 = 1
	)

	for i := 0; i < octaves; i++ {
		total += s.Value(x*frequency, y*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
