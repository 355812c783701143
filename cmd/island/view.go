package main

import (
	"fmt"
	"log"
	"time"

	"island-gen/internal/config"
	"island-gen/internal/graphics/renderables/island"
	"island-gen/internal/graphics/renderables/light"
	renderer "island-gen/internal/graphics/renderer"
	"island-gen/internal/input"
	"island-gen/internal/profiling"
	"island-gen/internal/viewer"
	"island-gen/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

const (
	winW     = 800
	winH     = 600
	winTitle = "Terrain Generator"
)

// runViewer opens a window onto is and blocks until it is closed.
func runViewer(is *world.Island, s config.WorldGenSettings, opts options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		return err
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	extent := float32(s.Width) * 0.1
	r, err := renderer.NewRenderer(winW, winH,
		island.NewIsland(is, opts.grassPath, opts.sandPath),
		light.NewMarker(float32(s.Width)/1024),
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	fbw, fbh := window.GetFramebufferSize()
	r.UpdateViewport(fbw, fbh)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	cam := viewer.Overlook(extent)
	orbit := viewer.NewLightOrbit(s.Width)

	im := input.NewInputManager()
	im.Attach(window)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		cam.HandleMouseMovement(xpos, ypos)
	})

	runLoop(window, r, im, cam, orbit)
	return nil
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, winTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

func runLoop(window *glfw.Window, r *renderer.Renderer, im *input.InputManager, cam *viewer.Camera, orbit *viewer.LightOrbit) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if im.JustPressed(input.ActionQuit) {
			window.SetShouldClose(true)
		}
		if im.JustPressed(input.ActionToggleWireframe) {
			r.ToggleWireframe()
		}
		if im.JustPressed(input.ActionLightForward) {
			orbit.Rotate(1)
		}
		if im.JustPressed(input.ActionLightBackward) {
			orbit.Rotate(-1)
		}
		if im.JustPressed(input.ActionOrbit) {
			cam.BeginDrag()
		}
		if im.JustReleased(input.ActionOrbit) {
			cam.EndDrag()
		}

		cam.Move(im.Movement(), dt)
		if n := im.Scroll(); n != 0 {
			cam.Scroll(n)
		}
		im.PostUpdate()

		r.Render(cam, orbit, dt)
		frames++

		if elapsed := time.Since(lastFPSCheckTime); elapsed >= time.Second {
			fps := float64(frames) / elapsed.Seconds()
			window.SetTitle(fmt.Sprintf("%s - FPS: %.1f", winTitle, fps))
			if fps < 20 {
				log.Printf("Slow frames: %.1f FPS (%s)", fps, profiling.TopN(2))
			}
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		window.SwapBuffers()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	}
}
