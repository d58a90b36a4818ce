package terrain

import (
	"math/rand"
	"testing"
)

func buildTestMesh(res int, seed int64) *Mesh {
	f := testField()
	c := NewClassifier(f)
	rng := rand.New(rand.NewSource(seed))
	return BuildMesh(f, c, 400, res, rng)
}

func TestBuildMeshDimensions(t *testing.T) {
	const res = 16
	m := buildTestMesh(res, 1)

	if got, want := len(m.Vertices), res*res; got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	if got, want := len(m.Indices), (res-1)*(res-1)*6; got != want {
		t.Errorf("expected %d indices, got %d", want, got)
	}

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d at position %d out of range", idx, i)
		}
	}
}

func TestBuildMeshDeterministic(t *testing.T) {
	a := buildTestMesh(12, 7)
	b := buildTestMesh(12, 7)

	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs between identical builds", i)
		}
	}
}

func TestBuildMeshHeightsMatchField(t *testing.T) {
	f := testField()
	c := NewClassifier(f)
	m := BuildMesh(f, c, 400, 10, rand.New(rand.NewSource(1)))

	for i, v := range m.Vertices {
		want := f.HeightAt(v.Position[0], v.Position[2])
		if v.Position[1] != want {
			t.Fatalf("vertex %d height %g does not match field sample %g", i, v.Position[1], want)
		}
	}
}

func TestBuildMeshNormals(t *testing.T) {
	m := buildTestMesh(20, 3)

	for i, v := range m.Vertices {
		n := v.Normal
		l := sqrtf(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if l < 0.99 || l > 1.01 {
			t.Fatalf("vertex %d normal not unit length: %g", i, l)
		}
		// Terrain is a height field, so normals always point upward
		if n[1] <= 0 {
			t.Fatalf("vertex %d normal points downward: %v", i, n)
		}
	}
}

func TestBuildMeshCoversWorldExtent(t *testing.T) {
	const size = 400
	m := buildTestMesh(8, 1)

	minX, maxX := m.Vertices[0].Position[0], m.Vertices[0].Position[0]
	for _, v := range m.Vertices {
		if v.Position[0] < minX {
			minX = v.Position[0]
		}
		if v.Position[0] > maxX {
			maxX = v.Position[0]
		}
	}

	const eps = 0.01
	if minX < -size/2-eps || minX > -size/2+eps || maxX < size/2-eps || maxX > size/2+eps {
		t.Errorf("mesh X extent [%g, %g], want [%g, %g]", minX, maxX, float32(-size/2), float32(size/2))
	}
}
