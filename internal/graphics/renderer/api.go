package renderer

import (
	"island-gen/internal/graphics"
	"island-gen/internal/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera    *graphics.Camera
	Viewer    *viewer.Camera
	Light     *viewer.LightOrbit
	DT        float64
	View      mgl32.Mat4
	Proj      mgl32.Mat4
	Wireframe bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
