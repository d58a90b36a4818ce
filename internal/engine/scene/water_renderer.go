package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyglide/internal/engine/scene/shaders"
	"github.com/Faultbox/skyglide/internal/engine/shader"
	"github.com/Faultbox/skyglide/internal/engine/water"
	"github.com/Faultbox/skyglide/pkg/math"
)

// WaterRenderer draws the translucent water plane.
type WaterRenderer struct {
	program uint32

	locViewProj int32
	locTime     int32
	locColor    int32
	locAlpha    int32

	vao uint32
	vbo uint32
}

// NewWaterRenderer compiles the water shader and uploads the plane.
func NewWaterRenderer(plane *water.Plane) (*WaterRenderer, error) {
	program, err := shader.CompileProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wr := &WaterRenderer{program: program}
	wr.locViewProj = shader.GetUniform(program, "uViewProj")
	wr.locTime = shader.GetUniform(program, "uTime")
	wr.locColor = shader.GetUniform(program, "uColor")
	wr.locAlpha = shader.GetUniform(program, "uAlpha")

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(plane.Vertices)*4, unsafe.Pointer(&plane.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return wr, nil
}

// Render draws the water plane. Call after opaque geometry; blending is
// enabled for the draw only.
func (wr *WaterRenderer) Render(viewProj math.Mat4, elapsed float32) {
	gl.UseProgram(wr.program)
	gl.UniformMatrix4fv(wr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(wr.locTime, elapsed)
	gl.Uniform3f(wr.locColor, 0.15, 0.35, 0.55)
	gl.Uniform1f(wr.locAlpha, 0.75)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(wr.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.program != 0 {
		gl.DeleteProgram(wr.program)
		wr.program = 0
	}
}
