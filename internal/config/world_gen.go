package config

import (
	"errors"
	"fmt"

	"island-gen/internal/noise"
)

// ErrOutOfRange is wrapped by every validation failure.
var ErrOutOfRange = errors.New("value out of range")

// baseWidth is the world width for a width multiplier of 1.
const baseWidth = 1024

// WorldGenSettings holds island generation configuration
type WorldGenSettings struct {
	Seed  int64
	Width int // world units per axis
	Step  int // world units between grid nodes

	Frequency   float64
	Amplitude   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	Sampler string // one of noise.SamplerNames()
	Workers int    // heightfield sampling goroutines
}

// Default returns the settings the command line starts from.
func Default() WorldGenSettings {
	width, step, _ := FromScale(6, 1)
	return WorldGenSettings{
		Seed:        42,
		Width:       width,
		Step:        step,
		Frequency:   3.0,
		Amplitude:   0.5,
		Octaves:     10,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Sampler:     noise.SamplerPerlin,
		Workers:     1,
	}
}

// FromScale converts the command-line width multiplier (1..13) and step
// exponent (0..5) into world units: width = 1024*widthMul and
// step = width / (32 * 2^stepExp).
func FromScale(widthMul, stepExp int) (width, step int, err error) {
	if widthMul < 1 || widthMul > 13 {
		return 0, 0, fmt.Errorf("%w: width must be between 1 and 13, got %d", ErrOutOfRange, widthMul)
	}
	if stepExp < 0 || stepExp > 5 {
		return 0, 0, fmt.Errorf("%w: step must be between 0 and 5, got %d", ErrOutOfRange, stepExp)
	}
	width = baseWidth * widthMul
	step = width / (32 << stepExp)
	return width, step, nil
}

// Validate applies the command-line ranges on top of ValidateCore.
func (s WorldGenSettings) Validate() error {
	if s.Frequency < 1.0 || s.Frequency > 5.0 {
		return fmt.Errorf("%w: frequency must be between 1 and 5, got %g", ErrOutOfRange, s.Frequency)
	}
	if s.Octaves < 2 || s.Octaves > 20 {
		return fmt.Errorf("%w: octave must be between 2 and 20, got %d", ErrOutOfRange, s.Octaves)
	}
	if s.Amplitude < 0.4 || s.Amplitude > 0.8 {
		return fmt.Errorf("%w: amplitude must be between 0.4 and 0.8, got %g", ErrOutOfRange, s.Amplitude)
	}
	if s.Persistence < 0.4 || s.Persistence > 0.6 {
		return fmt.Errorf("%w: persistence must be between 0.4 and 0.6, got %g", ErrOutOfRange, s.Persistence)
	}
	if s.Lacunarity < 1.0 || s.Lacunarity > 3.0 {
		return fmt.Errorf("%w: lacunarity must be between 1 and 3, got %g", ErrOutOfRange, s.Lacunarity)
	}
	return s.ValidateCore()
}

// ValidateCore checks only what generation needs to produce a well-formed
// mesh. Noise parameters outside the command-line ranges are accepted.
func (s WorldGenSettings) ValidateCore() error {
	if s.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrOutOfRange, s.Octaves)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrOutOfRange, s.Step)
	}
	if s.Width < 2*s.Step {
		return fmt.Errorf("%w: width %d leaves fewer than 2 nodes at step %d", ErrOutOfRange, s.Width, s.Step)
	}
	if s.Width%s.Step != 0 {
		return fmt.Errorf("%w: width %d is not a multiple of step %d", ErrOutOfRange, s.Width, s.Step)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrOutOfRange, s.Workers)
	}
	return nil
}

// OctaveParams returns the fractal parameters as a noise.Octaves.
func (s WorldGenSettings) OctaveParams() noise.Octaves {
	return noise.Octaves{
		Frequency:   s.Frequency,
		Amplitude:   s.Amplitude,
		Count:       s.Octaves,
		Persistence: s.Persistence,
		Lacunarity:  s.Lacunarity,
	}
}

// Nodes returns the grid node count per axis.
func (s WorldGenSettings) Nodes() int {
	return s.Width / s.Step
}
