package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyglide/internal/engine/scene/shaders"
	"github.com/Faultbox/skyglide/internal/engine/shader"
	"github.com/Faultbox/skyglide/internal/gen/vegetation"
	"github.com/Faultbox/skyglide/pkg/math"
)

// InstanceRenderer draws the scattered vegetation with GL instancing:
// one shared canopy geometry and a per-instance transform buffer.
type InstanceRenderer struct {
	program uint32

	locViewProj  int32
	locCameraPos int32
	locColor     int32
	locLightDir  int32
	locAmbient   int32
	locFogColor  int32
	locFogNear   int32
	locFogFar    int32

	vao         uint32
	meshVBO     uint32
	instanceVBO uint32
	vertexCount int32
	count       int32
}

// NewInstanceRenderer compiles the instancing shader and uploads the
// shared canopy geometry.
func NewInstanceRenderer() (*InstanceRenderer, error) {
	program, err := shader.CompileProgram(shaders.InstanceVertexShader, shaders.InstanceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("instance shader: %w", err)
	}

	ir := &InstanceRenderer{program: program}
	ir.locViewProj = shader.GetUniform(program, "uViewProj")
	ir.locCameraPos = shader.GetUniform(program, "uCameraPos")
	ir.locColor = shader.GetUniform(program, "uColor")
	ir.locLightDir = shader.GetUniform(program, "uLightDir")
	ir.locAmbient = shader.GetUniform(program, "uAmbient")
	ir.locFogColor = shader.GetUniform(program, "uFogColor")
	ir.locFogNear = shader.GetUniform(program, "uFogNear")
	ir.locFogFar = shader.GetUniform(program, "uFogFar")

	mesh := canopyGeometry()

	gl.GenVertexArrays(1, &ir.vao)
	gl.BindVertexArray(ir.vao)

	gl.GenBuffers(1, &ir.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, ir.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, unsafe.Pointer(&mesh[0]), gl.STATIC_DRAW)

	// Position (location 0), normal (location 1)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	// Per-instance: position, scale, rotation (locations 2..4)
	gl.GenBuffers(1, &ir.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, ir.instanceVBO)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, 5*4, 3*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)
	gl.VertexAttribPointerWithOffset(4, 1, gl.FLOAT, false, 5*4, 4*4)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribDivisor(4, 1)

	gl.BindVertexArray(0)
	ir.vertexCount = int32(len(mesh) / 6)

	return ir, nil
}

// Upload fills the instance buffer. Degenerate slots are skipped, so
// the draw count matches only the accepted placements.
func (ir *InstanceRenderer) Upload(instances []vegetation.Instance) {
	data := make([]float32, 0, len(instances)*5)
	for _, inst := range instances {
		if !inst.Active() {
			continue
		}
		data = append(data,
			inst.Position[0], inst.Position[1], inst.Position[2],
			inst.Scale, inst.Rotation)
	}

	ir.count = int32(len(data) / 5)
	if ir.count == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, ir.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws all active instances in one call.
func (ir *InstanceRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3, color [3]float32, env Environment) {
	if ir.count == 0 {
		return
	}

	gl.UseProgram(ir.program)
	gl.UniformMatrix4fv(ir.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(ir.locCameraPos, cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(ir.locColor, color[0], color[1], color[2])
	gl.Uniform3f(ir.locLightDir, env.LightDir[0], env.LightDir[1], env.LightDir[2])
	gl.Uniform3f(ir.locAmbient, env.Ambient[0], env.Ambient[1], env.Ambient[2])
	gl.Uniform3f(ir.locFogColor, env.FogColor[0], env.FogColor[1], env.FogColor[2])
	gl.Uniform1f(ir.locFogNear, env.FogNear)
	gl.Uniform1f(ir.locFogFar, env.FogFar)

	gl.BindVertexArray(ir.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, ir.vertexCount, ir.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (ir *InstanceRenderer) Destroy() {
	if ir.vao != 0 {
		gl.DeleteVertexArrays(1, &ir.vao)
		ir.vao = 0
	}
	if ir.meshVBO != 0 {
		gl.DeleteBuffers(1, &ir.meshVBO)
		ir.meshVBO = 0
	}
	if ir.instanceVBO != 0 {
		gl.DeleteBuffers(1, &ir.instanceVBO)
		ir.instanceVBO = 0
	}
	if ir.program != 0 {
		gl.DeleteProgram(ir.program)
		ir.program = 0
	}
}

// canopyGeometry returns a low-poly octahedral bush as interleaved
// position/normal triangles, base at the origin.
func canopyGeometry() []float32 {
	top := [3]float32{0, 1.6, 0}
	bottom := [3]float32{0, 0, 0}
	ring := [][3]float32{
		{0.6, 0.8, 0},
		{0, 0.8, 0.6},
		{-0.6, 0.8, 0},
		{0, 0.8, -0.6},
	}

	var data []float32
	emit := func(a, b, c [3]float32) {
		n := faceNormal(a, b, c)
		for _, p := range [][3]float32{a, b, c} {
			data = append(data, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}

	for i := range ring {
		j := (i + 1) % len(ring)
		emit(top, ring[j], ring[i])
		emit(bottom, ring[i], ring[j])
	}

	return data
}

func faceNormal(a, b, c [3]float32) [3]float32 {
	u := math.Vec3{X: b[0] - a[0], Y: b[1] - a[1], Z: b[2] - a[2]}
	v := math.Vec3{X: c[0] - a[0], Y: c[1] - a[1], Z: c[2] - a[2]}
	n := u.Cross(v).Normalize()
	return [3]float32{n.X, n.Y, n.Z}
}
