package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyglide/internal/engine/scene/shaders"
	"github.com/Faultbox/skyglide/internal/engine/shader"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
	"github.com/Faultbox/skyglide/pkg/math"
)

// TerrainRenderer draws the biome-colored terrain mesh.
type TerrainRenderer struct {
	program uint32

	locViewProj  int32
	locCameraPos int32
	locLightDir  int32
	locAmbient   int32
	locFogColor  int32
	locFogNear   int32
	locFogFar    int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewTerrainRenderer compiles the terrain shader.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{program: program}
	tr.locViewProj = shader.GetUniform(program, "uViewProj")
	tr.locCameraPos = shader.GetUniform(program, "uCameraPos")
	tr.locLightDir = shader.GetUniform(program, "uLightDir")
	tr.locAmbient = shader.GetUniform(program, "uAmbient")
	tr.locFogColor = shader.GetUniform(program, "uFogColor")
	tr.locFogNear = shader.GetUniform(program, "uFogNear")
	tr.locFogFar = shader.GetUniform(program, "uFogFar")

	return tr, nil
}

// Upload sends the mesh to the GPU, replacing any previous one.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh) {
	tr.clear()

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Color (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(mesh.Indices))
}

// Render draws the terrain.
func (tr *TerrainRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3, env Environment) {
	if tr.vao == 0 {
		return
	}

	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(tr.locCameraPos, cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(tr.locLightDir, env.LightDir[0], env.LightDir[1], env.LightDir[2])
	gl.Uniform3f(tr.locAmbient, env.Ambient[0], env.Ambient[1], env.Ambient[2])
	gl.Uniform3f(tr.locFogColor, env.FogColor[0], env.FogColor[1], env.FogColor[2])
	gl.Uniform1f(tr.locFogNear, env.FogNear)
	gl.Uniform1f(tr.locFogFar, env.FogFar)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clear() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clear()
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
