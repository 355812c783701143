package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightStep is the orbit increment applied per key press, in radians.
const LightStep = 0.1

// LightOrbit is a point light circling the island centre at a fixed height.
type LightOrbit struct {
	Radius float32
	Height float32
	Angle  float64
}

// NewLightOrbit sizes the orbit for an island of the given width in
// terrain units: radius width*0.1, height width/30.
func NewLightOrbit(width int) *LightOrbit {
	return &LightOrbit{
		Radius: float32(width) * 0.1,
		Height: float32(width) / 30,
	}
}

// Rotate advances the orbit by steps increments; negative steps turn back.
// Angle stays in [0, 2π).
func (l *LightOrbit) Rotate(steps int) {
	l.Angle = math.Mod(l.Angle+float64(steps)*LightStep, 2*math.Pi)
	if l.Angle < 0 {
		l.Angle += 2 * math.Pi
	}
}

// Position returns the light's world position.
func (l *LightOrbit) Position() mgl32.Vec3 {
	return mgl32.Vec3{
		l.Radius * float32(math.Cos(l.Angle)),
		l.Height,
		l.Radius * float32(math.Sin(l.Angle)),
	}
}

// Model is the translation placing a unit cube marker at the light.
func (l *LightOrbit) Model() mgl32.Mat4 {
	p := l.Position()
	return mgl32.Translate3D(p[0], p[1], p[2])
}
