package config

import (
	"errors"
	"testing"
)

func TestFromScale(t *testing.T) {
	cases := []struct {
		mul, exp    int
		width, step int
	}{
		{6, 1, 6144, 96},
		{1, 0, 1024, 32},
		{1, 5, 1024, 1},
		{13, 2, 13312, 104},
	}
	for _, c := range cases {
		w, s, err := FromScale(c.mul, c.exp)
		if err != nil {
			t.Fatalf("FromScale(%d, %d): %v", c.mul, c.exp, err)
		}
		if w != c.width || s != c.step {
			t.Errorf("FromScale(%d, %d) = (%d, %d), want (%d, %d)", c.mul, c.exp, w, s, c.width, c.step)
		}
		if w%s != 0 {
			t.Errorf("FromScale(%d, %d): width %d not a multiple of step %d", c.mul, c.exp, w, s)
		}
	}

	for _, bad := range [][2]int{{0, 1}, {14, 1}, {6, -1}, {6, 6}} {
		if _, _, err := FromScale(bad[0], bad[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FromScale(%d, %d) err = %v, want ErrOutOfRange", bad[0], bad[1], err)
		}
	}
}

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if d.Width != 6144 || d.Step != 96 || d.Seed != 42 || d.Octaves != 10 {
		t.Errorf("unexpected defaults: %+v", d)
	}
	if d.Nodes() != 64 {
		t.Errorf("Nodes() = %d, want 64", d.Nodes())
	}
}

func TestValidateRanges(t *testing.T) {
	cases := map[string]func(*WorldGenSettings){
		"frequency low":    func(s *WorldGenSettings) { s.Frequency = 0.5 },
		"frequency high":   func(s *WorldGenSettings) { s.Frequency = 5.5 },
		"octaves low":      func(s *WorldGenSettings) { s.Octaves = 1 },
		"octaves high":     func(s *WorldGenSettings) { s.Octaves = 21 },
		"amplitude low":    func(s *WorldGenSettings) { s.Amplitude = 0.3 },
		"amplitude high":   func(s *WorldGenSettings) { s.Amplitude = 0.9 },
		"persistence low":  func(s *WorldGenSettings) { s.Persistence = 0.3 },
		"persistence high": func(s *WorldGenSettings) { s.Persistence = 0.7 },
		"lacunarity low":   func(s *WorldGenSettings) { s.Lacunarity = 0.9 },
		"lacunarity high":  func(s *WorldGenSettings) { s.Lacunarity = 3.1 },
		"zero step":        func(s *WorldGenSettings) { s.Step = 0 },
		"one node":         func(s *WorldGenSettings) { s.Width = s.Step },
		"ragged step":      func(s *WorldGenSettings) { s.Step = 100 },
		"no workers":       func(s *WorldGenSettings) { s.Workers = 0 },
	}
	for name, mutate := range cases {
		s := Default()
		mutate(&s)
		if err := s.Validate(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: Validate() = %v, want ErrOutOfRange", name, err)
		}
	}
}

func TestValidateCoreAcceptsNonCLIParameters(t *testing.T) {
	s := WorldGenSettings{
		Width: 512, Step: 64,
		Frequency: 1, Amplitude: 1.5, Octaves: 4, Persistence: 0.5, Lacunarity: 2,
		Workers: 1,
	}
	if err := s.ValidateCore(); err != nil {
		t.Errorf("ValidateCore() = %v", err)
	}
	if err := s.Validate(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Validate() = %v, want ErrOutOfRange for amplitude 1.5", err)
	}

	s.Octaves = 0
	if err := s.ValidateCore(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ValidateCore() with 0 octaves = %v", err)
	}
}

func TestOctaveParams(t *testing.T) {
	o := Default().OctaveParams()
	if o.Frequency != 3 || o.Amplitude != 0.5 || o.Count != 10 || o.Persistence != 0.5 || o.Lacunarity != 2 {
		t.Errorf("OctaveParams() = %+v", o)
	}
}
