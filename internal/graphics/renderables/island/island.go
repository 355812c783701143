package island

import (
	"image/color"
	"log"

	"island-gen/internal/graphics"
	renderer "island-gen/internal/graphics/renderer"
	"island-gen/internal/meshing"
	"island-gen/internal/profiling"
	"island-gen/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	floatSize = 4
	indexSize = 4

	posAttrib      = 0
	normalAttrib   = 1
	texCoordAttrib = 2
	heightAttrib   = 3

	ambient = 0.3
)

var (
	grassFallback = color.RGBA{R: 86, G: 140, B: 60, A: 255}
	sandFallback  = color.RGBA{R: 214, G: 196, B: 148, A: 255}
)

// Island draws a generated island: the terrain block first, then the
// translucent water block from the same index buffer.
type Island struct {
	data      *world.Island
	grassPath string
	sandPath  string

	shader *graphics.Shader
	grass  uint32
	sand   uint32
	vao    uint32
	vbo    uint32
	ebo    uint32
}

// NewIsland creates a renderable for data textured with the images at the
// given paths.
func NewIsland(data *world.Island, grassPath, sandPath string) *Island {
	return &Island{data: data, grassPath: grassPath, sandPath: sandPath}
}

// Init compiles the shader, loads textures and uploads the mesh.
func (r *Island) Init() error {
	var err error
	r.shader, err = graphics.NewShader("terrain")
	if err != nil {
		return err
	}

	if r.grass, err = graphics.LoadTextureOr(r.grassPath, grassFallback); err != nil {
		log.Printf("grass texture: %v; using a flat colour", err)
	}
	if r.sand, err = graphics.LoadTextureOr(r.sandPath, sandFallback); err != nil {
		log.Printf("sand texture: %v; using a flat colour", err)
	}

	r.upload()
	return nil
}

func (r *Island) upload() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.data.Vertices)*floatSize, gl.Ptr(r.data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.data.Indices)*indexSize, gl.Ptr(r.data.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.Stride * floatSize)
	gl.VertexAttribPointerWithOffset(posAttrib, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointerWithOffset(normalAttrib, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(normalAttrib)
	gl.VertexAttribPointerWithOffset(texCoordAttrib, 2, gl.FLOAT, false, stride, 6*floatSize)
	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointerWithOffset(heightAttrib, 1, gl.FLOAT, false, stride, 8*floatSize)
	gl.EnableVertexAttribArray(heightAttrib)

	gl.BindVertexArray(0)
}

// Render draws terrain then water.
func (r *Island) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderIsland")()

	hints := r.data.Hints
	r.shader.Use()
	r.shader.SetMat4("projectionMatrix", ctx.Proj)
	r.shader.SetMat4("viewMatrix", ctx.View)
	r.shader.SetVec3("lightPos", ctx.Light.Position())
	r.shader.SetVec3("ambientLight", mgl32.Vec3{ambient, ambient, ambient})
	r.shader.SetFloat("waterLevel", hints.WaterLevel)
	r.shader.SetFloat("HeightDif_low", hints.HeightDifferenceLow)
	r.shader.SetFloat("HeightDif_high", hints.HeightDifferenceHigh)
	r.shader.SetFloat("waterDepthMax", hints.WaterDepthMax)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.grass)
	r.shader.SetInt("texture1", 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.sand)
	r.shader.SetInt("texture2", 1)

	gl.BindVertexArray(r.vao)

	r.shader.SetBool("useWaterTexture", false)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(r.data.TerrainIndexCount), gl.UNSIGNED_INT, 0)

	water := len(r.data.Indices) - r.data.TerrainIndexCount
	if water > 0 {
		// Water is translucent and must not hide terrain drawn after it.
		gl.DepthMask(false)
		r.shader.SetBool("useWaterTexture", true)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(water), gl.UNSIGNED_INT, uintptr(r.data.TerrainIndexCount*indexSize))
		gl.DepthMask(true)
	}

	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (r *Island) Dispose() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.grass != 0 {
		gl.DeleteTextures(1, &r.grass)
	}
	if r.sand != 0 {
		gl.DeleteTextures(1, &r.sand)
	}
	if r.shader != nil {
		r.shader.Delete()
	}
}
