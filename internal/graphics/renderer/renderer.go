package renderer

import (
	"island-gen/internal/graphics"
	"island-gen/internal/profiling"
	"island-gen/internal/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	wireframe   bool
}

// NewRenderer configures GL state and initialises rs in order. The island
// mesh is wound clockwise seen from above.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	if err := initAll(rs); err != nil {
		return nil, err
	}

	return r, nil
}

// initAll initialises rs in order. On failure it disposes every renderable
// it touched, the failing one included, since Init may have allocated
// before returning the error.
func initAll(rs []Renderable) error {
	for i, rn := range rs {
		if err := rn.Init(); err != nil {
			for j := i; j >= 0; j-- {
				rs[j].Dispose()
			}
			return err
		}
	}
	return nil
}

// Render draws one frame seen from v, lit by light.
func (r *Renderer) Render(v *viewer.Camera, light *viewer.LightOrbit, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	ctx := RenderContext{
		Camera:    r.camera,
		Viewer:    v,
		Light:     light,
		DT:        dt,
		View:      v.GetViewMatrix(),
		Proj:      r.camera.GetProjectionMatrix(),
		Wireframe: r.wireframe,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// ToggleWireframe switches between filled and line polygon modes.
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the projection camera
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and the projection
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
