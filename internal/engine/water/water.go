// Package water provides water plane geometry.
package water

// Plane holds water plane geometry ready for GPU upload.
type Plane struct {
	Vertices []float32 // Flat array: x,y,z for each of 4 vertices
	Level    float32   // Water Y level in world coordinates
}

// BuildPlane creates a quad at the water level, centered on the origin
// and spanning size world units plus padding on each side so the plane
// always reaches past the terrain edge.
func BuildPlane(size, level, padding float32) *Plane {
	half := size/2 + padding

	// Order: BL, BR, TR, TL for TRIANGLE_FAN rendering
	vertices := []float32{
		-half, level, half,
		half, level, half,
		half, level, -half,
		-half, level, -half,
	}

	return &Plane{
		Vertices: vertices,
		Level:    level,
	}
}

// DefaultPadding extends the plane beyond the terrain bounds.
const DefaultPadding = 50.0
