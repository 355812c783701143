package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultSpeed is the fly speed in mesh units per second.
	DefaultSpeed = 210.0
	// ScrollStep is how far one scroll notch moves along the view direction.
	ScrollStep = 7.0
	// MouseSensitivity converts cursor pixels to degrees while orbiting.
	MouseSensitivity = 0.03
	maxPitch         = 89.0
)

// Camera is a free-flying observer. Yaw and pitch are in degrees; yaw -90
// looks down -Z.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float64
	Pitch    float64
	Speed    float64

	dragging   bool
	firstMouse bool
	lastX      float64
	lastY      float64
}

// NewCamera places a camera at pos looking down -Z.
func NewCamera(pos mgl32.Vec3) *Camera {
	return &Camera{Position: pos, Yaw: -90, Speed: DefaultSpeed, firstMouse: true}
}

// Overlook positions a camera above the -Z edge of an island of the given
// mesh extent, pitched down towards its centre. The fly speed crosses the
// island in about four seconds.
func Overlook(extent float32) *Camera {
	c := NewCamera(mgl32.Vec3{0, extent * 0.6, extent * 0.9})
	c.Pitch = -35
	c.Speed = float64(extent) / 4
	return c
}

// Movement is the set of fly directions held during a frame.
type Movement struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
}

// GetFrontVector returns the unit view direction.
func (c *Camera) GetFrontVector() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(float32(c.Yaw)))
	p := float64(mgl32.DegToRad(float32(c.Pitch)))
	fx := float32(math.Cos(y) * math.Cos(p))
	fy := float32(math.Sin(p))
	fz := float32(math.Sin(y) * math.Cos(p))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// horizontalFront is the view direction flattened onto the XZ plane.
func (c *Camera) horizontalFront() mgl32.Vec3 {
	up := mgl32.Vec3{0, 1, 0}
	f := up.Cross(c.GetFrontVector().Cross(up))
	if f.Len() == 0 {
		return mgl32.Vec3{}
	}
	return f.Normalize()
}

func (c *Camera) right() mgl32.Vec3 {
	r := c.GetFrontVector().Cross(mgl32.Vec3{0, 1, 0})
	if r.Len() == 0 {
		return mgl32.Vec3{}
	}
	return r.Normalize()
}

// Move applies held directions for dt seconds. Forward and sideways motion
// stays horizontal regardless of pitch; Up and Down move along world Y.
func (c *Camera) Move(m Movement, dt float64) {
	step := float32(c.Speed * dt)
	var d mgl32.Vec3
	if m.Forward {
		d = d.Add(c.horizontalFront())
	}
	if m.Backward {
		d = d.Sub(c.horizontalFront())
	}
	if m.Right {
		d = d.Add(c.right())
	}
	if m.Left {
		d = d.Sub(c.right())
	}
	if m.Up {
		d = d.Add(mgl32.Vec3{0, 1, 0})
	}
	if m.Down {
		d = d.Sub(mgl32.Vec3{0, 1, 0})
	}
	c.Position = c.Position.Add(d.Mul(step))
}

// Scroll moves along the full view direction, positive notches forward.
func (c *Camera) Scroll(notches float64) {
	c.Position = c.Position.Add(c.GetFrontVector().Mul(float32(notches * ScrollStep)))
}

// BeginDrag starts a middle-button orbit. The next cursor event only records
// its position.
func (c *Camera) BeginDrag() {
	c.dragging = true
	c.firstMouse = true
}

// EndDrag stops orbiting.
func (c *Camera) EndDrag() { c.dragging = false }

// Dragging reports whether a middle-button orbit is in progress.
func (c *Camera) Dragging() bool { return c.dragging }

// HandleMouseMovement turns the camera while dragging.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if !c.dragging {
		return
	}
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := (xpos - c.lastX) * MouseSensitivity
	yoffset := (c.lastY - ypos) * MouseSensitivity
	c.lastX = xpos
	c.lastY = ypos

	c.Yaw += xoffset
	c.Pitch += yoffset

	// Constrain pitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// GetViewMatrix returns the world-to-eye transform.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.GetFrontVector()), mgl32.Vec3{0, 1, 0})
}
