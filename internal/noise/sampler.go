package noise

import (
	"errors"
	"fmt"
	"math"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler is a continuous 3D scalar noise source with values in [0,1].
type Sampler interface {
	Sample(x, y, z float64) float64
}

// Sampler names accepted by NewSampler.
const (
	SamplerPerlin      = "perlin"
	SamplerOpenSimplex = "opensimplex"
	SamplerAquilax     = "aquilax"
)

// ErrUnknownSampler is returned by NewSampler for an unrecognised name.
var ErrUnknownSampler = errors.New("unknown noise sampler")

// SamplerNames lists the names accepted by NewSampler.
func SamplerNames() []string {
	return []string{SamplerPerlin, SamplerOpenSimplex, SamplerAquilax}
}

// NewSampler builds the named sampler seeded with seed. The empty name
// selects the permutation-table Field.
func NewSampler(name string, seed int64) (Sampler, error) {
	switch name {
	case "", SamplerPerlin:
		return NewField(seed), nil
	case SamplerOpenSimplex:
		return NewOpenSimplexSampler(seed), nil
	case SamplerAquilax:
		return NewClassicPerlinSampler(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSampler, name)
	}
}

// OpenSimplexSampler adapts opensimplex noise to the Sampler interface.
type OpenSimplexSampler struct {
	os opensimplex.Noise
}

// NewOpenSimplexSampler returns a normalized OpenSimplex sampler.
func NewOpenSimplexSampler(seed int64) *OpenSimplexSampler {
	return &OpenSimplexSampler{os: opensimplex.NewNormalized(seed)}
}

// Sample implements Sampler.
func (s *OpenSimplexSampler) Sample(x, y, z float64) float64 {
	return clamp01(s.os.Eval3(x, y, z))
}

// ClassicPerlinSampler adapts a single-octave aquilax Perlin generator.
// Octaves are summed by Fractal, not by the library.
type ClassicPerlinSampler struct {
	p *perlin.Perlin
}

// NewClassicPerlinSampler returns a single-octave classic Perlin sampler.
func NewClassicPerlinSampler(seed int64) *ClassicPerlinSampler {
	return &ClassicPerlinSampler{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Sample implements Sampler.
func (s *ClassicPerlinSampler) Sample(x, y, z float64) float64 {
	return clamp01((s.p.Noise3D(x, y, z) + 1) / 2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
