package light

import (
	"island-gen/internal/graphics"
	renderer "island-gen/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var cubeVertices = []float32{
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,
}

var cubeIndices = []uint32{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	0, 4, 7, 7, 3, 0,
	1, 5, 6, 6, 2, 1,
	3, 2, 6, 6, 7, 3,
	0, 1, 5, 5, 4, 0,
}

// Marker draws a small unlit cube at the orbiting light.
type Marker struct {
	size   float32
	color  mgl32.Vec3
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32
}

// NewMarker creates a light marker cube with the given edge length in mesh
// units.
func NewMarker(size float32) *Marker {
	return &Marker{size: size, color: mgl32.Vec3{1, 1, 0.85}}
}

// Init compiles the shader and uploads the cube.
func (m *Marker) Init() error {
	var err error
	m.shader, err = graphics.NewShader("light")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the cube at ctx.Light.
func (m *Marker) Render(ctx renderer.RenderContext) {
	model := ctx.Light.Model().Mul4(mgl32.Scale3D(m.size, m.size, m.size))

	m.shader.Use()
	m.shader.SetMat4("model", model)
	m.shader.SetMat4("view", ctx.View)
	m.shader.SetMat4("projection", ctx.Proj)
	m.shader.SetVec3("lightColor", m.color)

	// The marker is always visible and its winding is mixed.
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose cleans up OpenGL resources
func (m *Marker) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
