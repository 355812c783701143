package noise

import (
	"math"
)

// Improved gradient noise over a seeded permutation table.

const permutationSize = 256

// defaultOctaves is used by GenerateDefault when no octave count was set.
const defaultOctaves = 4

// gradients holds the 12 lattice gradient directions. Only the entries
// reachable through hash&11 are ever selected.
var gradients = [12][3]float64{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
}

// Field is a seeded 3D gradient noise source. The permutation table is
// fixed after Initialize and read-only while sampling, so a Field may be
// shared by concurrent readers as long as nobody re-seeds it.
type Field struct {
	perm    [2 * permutationSize]int
	seed    int64
	octaves int
}

// NewField returns a Field seeded with seed.
func NewField(seed int64) *Field {
	f := &Field{octaves: defaultOctaves}
	f.Initialize(seed)
	return f
}

// Initialize rebuilds the permutation table from seed, replacing any
// previous state.
func (f *Field) Initialize(seed int64) {
	var p [permutationSize]int
	for i := range p {
		p[i] = i
	}
	shuffle(p[:], newSplitMix64(seed))

	// Duplicate so corner hashing never has to wrap.
	copy(f.perm[:permutationSize], p[:])
	copy(f.perm[permutationSize:], p[:])
	f.seed = seed
}

// Seed returns the seed the table was built from.
func (f *Field) Seed() int64 { return f.seed }

// Permutation returns a copy of the first half of the permutation table.
func (f *Field) Permutation() []int {
	out := make([]int, permutationSize)
	copy(out, f.perm[:permutationSize])
	return out
}

// SetOctaves sets the octave count used by GenerateDefault.
func (f *Field) SetOctaves(n int) { f.octaves = n }

// Octaves returns the octave count used by GenerateDefault.
func (f *Field) Octaves() int { return f.octaves }

// Sample returns the noise value at (x, y, z), remapped to [0,1].
func (f *Field) Sample(x, y, z float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	fz := math.Floor(z)

	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	p := &f.perm
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	res := lerp(w,
		lerp(v,
			lerp(u, grad(p[AA], x, y, z), grad(p[BA], x-1, y, z)),
			lerp(u, grad(p[AB], x, y-1, z), grad(p[BB], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[AA+1], x, y, z-1), grad(p[BA+1], x-1, y, z-1)),
			lerp(u, grad(p[AB+1], x, y-1, z-1), grad(p[BB+1], x-1, y-1, z-1))))

	return (res + 1.0) / 2.0
}

// Generate sums octaves of Sample. See Fractal for the scaling of the result.
func (f *Field) Generate(x, y, z float64, o Octaves) float64 {
	return Fractal(f, x, y, z, o)
}

// GenerateDefault is Generate with o.Count replaced by the field's octave count.
func (f *Field) GenerateDefault(x, y, z float64, o Octaves) float64 {
	o.Count = f.octaves
	return Fractal(f, x, y, z, o)
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	g := &gradients[hash&11]
	return g[0]*x + g[1]*y + g[2]*z
}
