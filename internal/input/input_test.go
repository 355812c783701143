package input

import (
	"testing"

	"island-gen/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.Key1, glfw.Press)
	if !im.JustPressed(ActionToggleWireframe) || !im.IsActive(ActionToggleWireframe) {
		t.Fatalf("Key1 press not seen as a fresh press")
	}
	im.PostUpdate()
	if im.JustPressed(ActionToggleWireframe) {
		t.Errorf("JustPressed survived PostUpdate")
	}

	// A repeat while held is not a new press.
	im.HandleKeyEvent(glfw.Key1, glfw.Repeat)
	if im.JustPressed(ActionToggleWireframe) {
		t.Errorf("repeat reported as a fresh press")
	}

	im.HandleKeyEvent(glfw.Key1, glfw.Release)
	if !im.JustReleased(ActionToggleWireframe) || im.IsActive(ActionToggleWireframe) {
		t.Errorf("release not recorded")
	}
}

func TestMovement(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.HandleKeyEvent(glfw.KeyR, glfw.Press)

	want := viewer.Movement{Forward: true, Right: true, Up: true}
	if got := im.Movement(); got != want {
		t.Errorf("Movement() = %+v, want %+v", got, want)
	}

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press) // unbound
	if got := im.Movement(); got != want {
		t.Errorf("unbound key changed Movement() to %+v", got)
	}
}

func TestMiddleButtonOrbit(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonMiddle, glfw.Press)
	if !im.JustPressed(ActionOrbit) {
		t.Fatalf("middle press not bound to ActionOrbit")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonMiddle, glfw.Release)
	if !im.JustReleased(ActionOrbit) {
		t.Errorf("middle release not recorded")
	}
}

func TestScrollAccumulates(t *testing.T) {
	im := NewInputManager()
	im.HandleScrollEvent(1)
	im.HandleScrollEvent(2)
	im.HandleScrollEvent(-0.5)
	if got := im.Scroll(); got != 2.5 {
		t.Errorf("Scroll() = %v, want 2.5", got)
	}
	im.PostUpdate()
	if got := im.Scroll(); got != 0 {
		t.Errorf("Scroll() after PostUpdate = %v, want 0", got)
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyZ, ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Errorf("out-of-range actions reported active")
	}
}
