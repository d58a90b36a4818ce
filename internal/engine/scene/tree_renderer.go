package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyglide/internal/engine/scene/shaders"
	"github.com/Faultbox/skyglide/internal/engine/shader"
	"github.com/Faultbox/skyglide/internal/gen/tree"
	"github.com/Faultbox/skyglide/pkg/math"
)

const cylinderSides = 6

// TreeRenderer draws branch segments as tapered cylinders from one unit
// geometry, plus instanced swaying leaf quads.
type TreeRenderer struct {
	branchProgram uint32
	leafProgram   uint32

	// Branch uniforms
	locBViewProj   int32
	locBModel      int32
	locBBaseRadius int32
	locBTipRadius  int32
	locBColor      int32
	locBLightDir   int32
	locBAmbient    int32

	// Leaf uniforms
	locLViewProj    int32
	locLCameraRight int32
	locLCameraUp    int32
	locLTime        int32
	locLColor       int32

	branchVAO   uint32
	branchVBO   uint32
	branchVerts int32

	leafVAO     uint32
	leafQuadVBO uint32
	leafVBO     uint32
	leafCount   int32

	segments []segmentDraw
}

type segmentDraw struct {
	model      math.Mat4
	baseRadius float32
	tipRadius  float32
}

// NewTreeRenderer compiles the branch and leaf shaders and uploads the
// shared geometries.
func NewTreeRenderer() (*TreeRenderer, error) {
	branchProgram, err := shader.CompileProgram(shaders.TreeVertexShader, shaders.TreeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("tree shader: %w", err)
	}
	leafProgram, err := shader.CompileProgram(shaders.LeafVertexShader, shaders.LeafFragmentShader)
	if err != nil {
		gl.DeleteProgram(branchProgram)
		return nil, fmt.Errorf("leaf shader: %w", err)
	}

	r := &TreeRenderer{branchProgram: branchProgram, leafProgram: leafProgram}

	r.locBViewProj = shader.GetUniform(branchProgram, "uViewProj")
	r.locBModel = shader.GetUniform(branchProgram, "uModel")
	r.locBBaseRadius = shader.GetUniform(branchProgram, "uBaseRadius")
	r.locBTipRadius = shader.GetUniform(branchProgram, "uTipRadius")
	r.locBColor = shader.GetUniform(branchProgram, "uColor")
	r.locBLightDir = shader.GetUniform(branchProgram, "uLightDir")
	r.locBAmbient = shader.GetUniform(branchProgram, "uAmbient")

	r.locLViewProj = shader.GetUniform(leafProgram, "uViewProj")
	r.locLCameraRight = shader.GetUniform(leafProgram, "uCameraRight")
	r.locLCameraUp = shader.GetUniform(leafProgram, "uCameraUp")
	r.locLTime = shader.GetUniform(leafProgram, "uTime")
	r.locLColor = shader.GetUniform(leafProgram, "uColor")

	r.uploadBranchGeometry()
	r.uploadLeafQuad()

	return r, nil
}

// SetTree replaces the drawn tree. Call whenever the tree regenerates.
func (r *TreeRenderer) SetTree(t *tree.Tree) {
	r.segments = r.segments[:0]
	for _, s := range t.Segments {
		dir := s.Tip.Sub(s.Base)
		length := dir.Length()
		if length < 1e-5 {
			continue
		}
		r.segments = append(r.segments, segmentDraw{
			model:      orientSegment(s.Base, dir.Scale(1/length), length),
			baseRadius: s.BaseRadius,
			tipRadius:  s.TipRadius,
		})
	}

	data := make([]float32, 0, len(t.Leaves)*6)
	for _, l := range t.Leaves {
		data = append(data,
			l.Position.X, l.Position.Y, l.Position.Z,
			l.Size, l.Frequency, l.Phase)
	}
	r.leafCount = int32(len(t.Leaves))
	if r.leafCount == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.leafVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the branches, then the leaves unless the season is
// leafless. Right and up are the camera billboard axes.
func (r *TreeRenderer) Render(viewProj math.Mat4, right, up math.Vec3, elapsed float32, season tree.Season, env Environment) {
	barkColor := [3]float32{0.42, 0.3, 0.2}

	gl.UseProgram(r.branchProgram)
	gl.UniformMatrix4fv(r.locBViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(r.locBColor, barkColor[0], barkColor[1], barkColor[2])
	gl.Uniform3f(r.locBLightDir, env.LightDir[0], env.LightDir[1], env.LightDir[2])
	gl.Uniform3f(r.locBAmbient, env.Ambient[0], env.Ambient[1], env.Ambient[2])

	gl.BindVertexArray(r.branchVAO)
	for i := range r.segments {
		s := &r.segments[i]
		gl.UniformMatrix4fv(r.locBModel, 1, false, s.model.Ptr())
		gl.Uniform1f(r.locBBaseRadius, s.baseRadius)
		gl.Uniform1f(r.locBTipRadius, s.tipRadius)
		gl.DrawArrays(gl.TRIANGLES, 0, r.branchVerts)
	}
	gl.BindVertexArray(0)

	if !season.HasLeaves() || r.leafCount == 0 {
		return
	}

	color := season.LeafColor()
	gl.UseProgram(r.leafProgram)
	gl.UniformMatrix4fv(r.locLViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(r.locLCameraRight, right.X, right.Y, right.Z)
	gl.Uniform3f(r.locLCameraUp, up.X, up.Y, up.Z)
	gl.Uniform1f(r.locLTime, elapsed)
	gl.Uniform3f(r.locLColor, color[0], color[1], color[2])

	gl.BindVertexArray(r.leafVAO)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, r.leafCount)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (r *TreeRenderer) Destroy() {
	if r.branchVAO != 0 {
		gl.DeleteVertexArrays(1, &r.branchVAO)
		r.branchVAO = 0
	}
	if r.branchVBO != 0 {
		gl.DeleteBuffers(1, &r.branchVBO)
		r.branchVBO = 0
	}
	if r.leafVAO != 0 {
		gl.DeleteVertexArrays(1, &r.leafVAO)
		r.leafVAO = 0
	}
	if r.leafQuadVBO != 0 {
		gl.DeleteBuffers(1, &r.leafQuadVBO)
		r.leafQuadVBO = 0
	}
	if r.leafVBO != 0 {
		gl.DeleteBuffers(1, &r.leafVBO)
		r.leafVBO = 0
	}
	if r.branchProgram != 0 {
		gl.DeleteProgram(r.branchProgram)
		r.branchProgram = 0
	}
	if r.leafProgram != 0 {
		gl.DeleteProgram(r.leafProgram)
		r.leafProgram = 0
	}
}

func (r *TreeRenderer) uploadBranchGeometry() {
	mesh := cylinderGeometry()

	gl.GenVertexArrays(1, &r.branchVAO)
	gl.BindVertexArray(r.branchVAO)

	gl.GenBuffers(1, &r.branchVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.branchVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, unsafe.Pointer(&mesh[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	r.branchVerts = int32(len(mesh) / 6)
}

func (r *TreeRenderer) uploadLeafQuad() {
	// Unit quad centered on the cluster, billboarded in the shader
	quad := []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0.5, 0.5, 0,
		-0.5, -0.5, 0,
		0.5, 0.5, 0,
		-0.5, 0.5, 0,
	}

	gl.GenVertexArrays(1, &r.leafVAO)
	gl.BindVertexArray(r.leafVAO)

	gl.GenBuffers(1, &r.leafQuadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.leafQuadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, unsafe.Pointer(&quad[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// Per-cluster: position, size, frequency, phase (locations 1..4)
	gl.GenBuffers(1, &r.leafVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.leafVBO)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribDivisor(1, 1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, 6*4, 4*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)
	gl.VertexAttribPointerWithOffset(4, 1, gl.FLOAT, false, 6*4, 5*4)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribDivisor(4, 1)

	gl.BindVertexArray(0)
}

// orientSegment builds a model matrix mapping the unit cylinder (Y up,
// height 1) onto a branch at base pointing along dir.
func orientSegment(base, dir math.Vec3, length float32) math.Mat4 {
	up := math.Vec3{Y: 1}
	model := math.Translate(base.X, base.Y, base.Z)

	axis := up.Cross(dir)
	if l := axis.Length(); l > 1e-5 {
		angle := acosf(clampf(up.Dot(dir), -1, 1))
		model = model.Mul(math.RotateAxis(axis.Scale(1/l), angle))
	} else if dir.Y < 0 {
		// Straight down: flip around X
		model = model.Mul(math.RotateX(pi))
	}

	return model.Mul(math.Scale(1, length, 1))
}

// cylinderGeometry returns a unit cylinder with Y in [0, 1] and radius 1
// as interleaved position/normal triangles. The shader tapers the
// radius per ring.
func cylinderGeometry() []float32 {
	var data []float32
	for i := 0; i < cylinderSides; i++ {
		a0 := 2 * pi * float32(i) / cylinderSides
		a1 := 2 * pi * float32(i+1) / cylinderSides

		x0, z0 := cosf(a0), sinf(a0)
		x1, z1 := cosf(a1), sinf(a1)

		// Two triangles per side, normals along the ring direction
		verts := [][6]float32{
			{x0, 0, z0, x0, 0, z0},
			{x1, 0, z1, x1, 0, z1},
			{x1, 1, z1, x1, 0, z1},
			{x0, 0, z0, x0, 0, z0},
			{x1, 1, z1, x1, 0, z1},
			{x0, 1, z0, x0, 0, z0},
		}
		for _, v := range verts {
			data = append(data, v[:]...)
		}
	}
	return data
}
