package noise

// splitMix64 is a small deterministic stream used to shuffle the
// permutation table. Each Field owns its own stream seeded from the
// caller's seed, so table construction never touches shared state.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed int64) *splitMix64 {
	return &splitMix64{state: uint64(seed)}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// intn returns a value in [0, n). n must be > 0.
func (s *splitMix64) intn(n int) int {
	return int(s.next() % uint64(n))
}

// shuffle is a Fisher-Yates shuffle driven by r.
func shuffle(p []int, r *splitMix64) {
	for i := len(p) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}
