package terrain

import (
	"math/rand"
	"runtime"
	"sync"
)

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Mesh holds terrain mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// BuildMesh samples the field over a res×res vertex grid centered on the
// origin and spanning size world units. Height sampling fans out per row
// across workers; colors and normals are filled in afterwards, once the
// full elevation grid exists.
func BuildMesh(field *Field, classifier *Classifier, size float32, res int, rng *rand.Rand) *Mesh {
	cell := size / float32(res-1)
	half := size / 2

	heights := make([]float32, res*res)

	var wg sync.WaitGroup
	rows := make(chan int)
	workers := runtime.NumCPU()
	if workers > res {
		workers = res
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				z := float32(j)*cell - half
				for i := 0; i < res; i++ {
					x := float32(i)*cell - half
					heights[j*res+i] = field.HeightAt(x, z)
				}
			}
		}()
	}
	for j := 0; j < res; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	vertices := make([]Vertex, res*res)
	for j := 0; j < res; j++ {
		z := float32(j)*cell - half
		for i := 0; i < res; i++ {
			x := float32(i)*cell - half
			h := heights[j*res+i]

			biome := classifier.ClassifyDithered(h, rng.Float32()*2-1)
			color := biome.Color()

			// Slight per-vertex brightness variation hides the grid
			shade := 0.94 + rng.Float32()*0.12
			color[0] *= shade
			color[1] *= shade
			color[2] *= shade

			vertices[j*res+i] = Vertex{
				Position: [3]float32{x, h, z},
				Color:    color,
			}
		}
	}

	indices := make([]uint32, 0, (res-1)*(res-1)*6)
	for j := 0; j < res-1; j++ {
		for i := 0; i < res-1; i++ {
			a := uint32(j*res + i)
			b := a + 1
			c := a + uint32(res)
			d := c + 1
			indices = append(indices, a, c, b, b, c, d)
		}
	}

	accumulateNormals(vertices, indices)

	return &Mesh{Vertices: vertices, Indices: indices}
}

// accumulateNormals sums face normals into each vertex and normalizes.
// Shared vertices end up with smoothly averaged normals.
func accumulateNormals(vertices []Vertex, indices []uint32) {
	for t := 0; t+2 < len(indices); t += 3 {
		a := &vertices[indices[t]]
		b := &vertices[indices[t+1]]
		c := &vertices[indices[t+2]]

		e1 := [3]float32{
			b.Position[0] - a.Position[0],
			b.Position[1] - a.Position[1],
			b.Position[2] - a.Position[2],
		}
		e2 := [3]float32{
			c.Position[0] - a.Position[0],
			c.Position[1] - a.Position[1],
			c.Position[2] - a.Position[2],
		}
		n := cross(e1, e2)

		for _, v := range []*Vertex{a, b, c} {
			v.Normal[0] += n[0]
			v.Normal[1] += n[1]
			v.Normal[2] += n[2]
		}
	}

	for i := range vertices {
		vertices[i].Normal = normalize(vertices[i].Normal)
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := sqrtf(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
