package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var testOctaves = Octaves{Frequency: 1.0, Amplitude: 1.5, Count: 4, Persistence: 0.5, Lacunarity: 2.0}

// TestPermutationIsShuffledIdentity verifies the table holds every value
// in [0,255] exactly once and that the second half mirrors the first
func TestPermutationIsShuffledIdentity(t *testing.T) {
	f := NewField(42)
	var seen [256]bool
	for i, v := range f.Permutation() {
		if v < 0 || v > 255 {
			t.Fatalf("perm[%d]=%d out of [0,255]", i, v)
		}
		if seen[v] {
			t.Fatalf("perm value %d appears twice", v)
		}
		seen[v] = true
	}
	for i := range permutationSize {
		if f.perm[i] != f.perm[i+permutationSize] {
			t.Fatalf("perm[%d]=%d but perm[%d]=%d", i, f.perm[i], i+permutationSize, f.perm[i+permutationSize])
		}
	}
}

// TestPermutationGolden pins the shuffle for seed 42
func TestPermutationGolden(t *testing.T) {
	want := []int{203, 217, 124, 199, 53, 101, 223, 240, 163, 7}
	got := NewField(42).Permutation()[:len(want)]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("perm prefix = %v, want %v", got, want)
		}
	}
}

func TestSeedSensitivity(t *testing.T) {
	a := NewField(1)
	b := NewField(2)

	same := true
	pa, pb := a.Permutation(), b.Permutation()
	for i := range pa {
		if pa[i] != pb[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("seeds 1 and 2 produced identical permutation tables")
	}

	differs := 0
	for i := range 50 {
		x := 0.37 + float64(i)*1.13
		if a.Sample(x, 2.71, 0.5) != b.Sample(x, 2.71, 0.5) {
			differs++
		}
	}
	if differs == 0 {
		t.Errorf("seeds 1 and 2 produced identical samples at 50 points")
	}
}

func TestInitializeReplacesTable(t *testing.T) {
	f := NewField(7)
	before := f.Sample(1.3, 4.2, 0.5)

	f.Initialize(99)
	if f.Seed() != 99 {
		t.Errorf("Seed() = %d after Initialize(99)", f.Seed())
	}
	if got, want := f.Sample(1.3, 4.2, 0.5), NewField(99).Sample(1.3, 4.2, 0.5); got != want {
		t.Errorf("re-seeded field sample = %v, fresh field = %v", got, want)
	}

	f.Initialize(7)
	if after := f.Sample(1.3, 4.2, 0.5); after != before {
		t.Errorf("re-seeding with 7 gave %v, want %v", after, before)
	}
}

// TestSampleDeterministic verifies repeated calls and separate fields agree exactly
func TestSampleDeterministic(t *testing.T) {
	f := NewField(42)
	g := NewField(42)
	first := f.Sample(1.5, 2.7, 3.3)
	for i := range 100 {
		if v := f.Sample(1.5, 2.7, 3.3); v != first {
			t.Fatalf("Sample not deterministic: call %d = %v, first = %v", i, v, first)
		}
	}
	if v := g.Sample(1.5, 2.7, 3.3); v != first {
		t.Errorf("independent field with same seed = %v, want %v", v, first)
	}
}

func TestSampleGolden(t *testing.T) {
	got := NewField(42).Sample(0.3, 1.7, 2.2)
	if math.Abs(got-0.70308835648) > 1e-9 {
		t.Errorf("Sample(0.3, 1.7, 2.2) = %.12f, want 0.703088356480", got)
	}
}

// TestSampleRangeGrid checks [0,1] on a dense grid spanning several cells,
// including negative coordinates and exact lattice points
func TestSampleRangeGrid(t *testing.T) {
	f := NewField(42)
	for x := -4.0; x <= 4.0; x += 0.25 {
		for y := -4.0; y <= 4.0; y += 0.25 {
			for z := -2.0; z <= 2.0; z += 0.5 {
				v := f.Sample(x, y, z)
				if v < 0 || v > 1 {
					t.Fatalf("Sample(%v, %v, %v) = %v, expected in [0,1]", x, y, z, v)
				}
			}
		}
	}
}

func TestSampleRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	f := NewField(42)
	for range 5000 {
		x := rng.Float64()*600 - 300
		y := rng.Float64()*600 - 300
		z := rng.Float64()*600 - 300
		if v := f.Sample(x, y, z); v < 0 || v > 1 {
			t.Errorf("Sample(%f, %f, %f) = %f, expected in [0,1]", x, y, z, v)
		}
	}
}

// TestSampleLatticeIsMidpoint verifies gradient noise vanishes at lattice points
func TestSampleLatticeIsMidpoint(t *testing.T) {
	f := NewField(3)
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-5, 7, -1}, {255, 256, 257}} {
		if v := f.Sample(p[0], p[1], p[2]); v != 0.5 {
			t.Errorf("Sample(%v) = %v, want 0.5", p, v)
		}
	}
}

func TestSampleContinuity(t *testing.T) {
	f := NewField(42)
	v1 := f.Sample(1.0, 1.0, 1.0)
	v2 := f.Sample(1.01, 1.0, 1.0)
	if diff := math.Abs(v1 - v2); diff >= 0.05 {
		t.Errorf("Sample not continuous: %f vs %f, diff=%f", v1, v2, diff)
	}
}

func TestFade(t *testing.T) {
	cases := map[float64]float64{0: 0, 0.5: 0.5, 1: 1}
	for in, want := range cases {
		if got := fade(in); got != want {
			t.Errorf("fade(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	f := NewField(42)
	first := f.Generate(1.5, 2.7, 3.3, testOctaves)
	for i := range 100 {
		if v := f.Generate(1.5, 2.7, 3.3, testOctaves); v != first {
			t.Fatalf("Generate not deterministic: call %d = %v, first = %v", i, v, first)
		}
	}
}

func TestGenerateGolden(t *testing.T) {
	got := NewField(42).Generate(0.3, 1.7, 2.2, testOctaves)
	if math.Abs(got-0.481184824475443) > 1e-9 {
		t.Errorf("Generate(0.3, 1.7, 2.2) = %.15f, want 0.481184824475443", got)
	}
}

func TestMaxAmplitude(t *testing.T) {
	o := Octaves{Amplitude: 1.5, Count: 4, Persistence: 0.5}
	if got, want := o.MaxAmplitude(), 1.5+0.75+0.375+0.1875; got != want {
		t.Errorf("MaxAmplitude() = %v, want %v", got, want)
	}
}

// TestGenerateScalesWithAmplitude verifies the output is the normalised
// signal times the summed octave weights, so doubling the amplitude doubles
// the result instead of clamping it to [-1,1]
func TestGenerateScalesWithAmplitude(t *testing.T) {
	f := NewField(42)
	x, y, z := 0.3, 1.7, 2.2

	base := testOctaves
	base.Amplitude = 1.0
	ref := f.Generate(x, y, z, base)
	if ref == 0 {
		t.Fatalf("reference sample is exactly zero; pick another point")
	}

	for _, amp := range []float64{0.5, 1.5, 4, 10} {
		o := base
		o.Amplitude = amp
		got := f.Generate(x, y, z, o)
		if math.Abs(got/ref-amp) > 1e-9 {
			t.Errorf("amplitude %v: ratio %v, want %v", amp, got/ref, amp)
		}
	}

	// 0.32 * 10 lies outside [-1,1]; a clamped signal would fail here.
	big := base
	big.Amplitude = 10
	if v := f.Generate(x, y, z, big); math.Abs(v) <= 1 {
		t.Errorf("Generate(amplitude 10) = %v, want magnitude above 1", v)
	}
}

// TestGenerateScalesWithOctaveCount checks the result against the
// normalised fractal sum recomputed from Sample, scaled by MaxAmplitude
func TestGenerateScalesWithOctaveCount(t *testing.T) {
	f := NewField(42)
	x, y, z := 0.6, -0.4, 0.5

	for count := 1; count <= 8; count++ {
		o := testOctaves
		o.Count = count

		sum, weight := 0.0, 0.0
		freq, amp := o.Frequency, o.Amplitude
		for range count {
			sum += amp * f.Sample(x*freq, y*freq, z*freq)
			weight += amp
			freq *= o.Lacunarity
			amp *= o.Persistence
		}
		normalised := 2*(sum/weight) - 1

		got := f.Generate(x, y, z, o)
		want := normalised * o.MaxAmplitude()
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("count %d: Generate = %v, want %v", count, got, want)
		}
		if bound := o.MaxAmplitude(); math.Abs(got) > bound {
			t.Errorf("count %d: |%v| exceeds MaxAmplitude %v", count, got, bound)
		}
	}
}

func TestGenerateSingleOctave(t *testing.T) {
	f := NewField(5)
	o := Octaves{Frequency: 2, Amplitude: 0.6, Count: 1, Persistence: 0.5, Lacunarity: 2}
	got := f.Generate(0.25, 0.75, 0.5, o)
	want := (2*f.Sample(0.5, 1.5, 1.0) - 1) * 0.6
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("single octave = %v, want %v", got, want)
	}
}

func TestGenerateDefaultUsesFieldOctaves(t *testing.T) {
	f := NewField(42)
	if f.Octaves() != defaultOctaves {
		t.Fatalf("Octaves() = %d, want %d", f.Octaves(), defaultOctaves)
	}
	f.SetOctaves(6)

	o := testOctaves
	o.Count = 1
	want := testOctaves
	want.Count = 6
	if got, exp := f.GenerateDefault(0.3, 0.2, 0.5, o), f.Generate(0.3, 0.2, 0.5, want); got != exp {
		t.Errorf("GenerateDefault = %v, want %v", got, exp)
	}
}

func TestNewSampler(t *testing.T) {
	for _, name := range append(SamplerNames(), "") {
		s, err := NewSampler(name, 42)
		if err != nil {
			t.Fatalf("NewSampler(%q): %v", name, err)
		}
		rng := rand.New(rand.NewSource(7))
		for range 500 {
			x, y, z := rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*4
			v := s.Sample(x, y, z)
			if v < 0 || v > 1 {
				t.Errorf("%s: Sample(%f, %f, %f) = %f, expected in [0,1]", name, x, y, z, v)
			}
			if v != s.Sample(x, y, z) {
				t.Errorf("%s: Sample not deterministic at (%f, %f, %f)", name, x, y, z)
			}
		}
	}

	if _, err := NewSampler("worley", 1); !errors.Is(err, ErrUnknownSampler) {
		t.Errorf("NewSampler(worley) error = %v, want ErrUnknownSampler", err)
	}
}

func TestFractalAcceptsAnySampler(t *testing.T) {
	s := NewOpenSimplexSampler(42)
	o := testOctaves
	v := Fractal(s, 0.1, 0.2, 0.5, o)
	if math.Abs(v) > o.MaxAmplitude() {
		t.Errorf("Fractal over opensimplex = %v exceeds %v", v, o.MaxAmplitude())
	}
}

func BenchmarkGenerate(b *testing.B) {
	f := NewField(42)
	for i := 0; i < b.N; i++ {
		_ = f.Generate(float64(i%512)/512, 0.25, 0.5, testOctaves)
	}
}
