package engine

// RNG is a deterministic linear congruential generator.
// The same seed always yields the same sequence, which is what makes
// replay reconstruction possible. It reads no hidden entropy sources.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded from the given integer.
func NewRNG(seed int64) *RNG {
	return &RNG{state: uint32(seed)}
}

// Next advances the generator and returns a float in [0, 1).
// Uses the Numerical Recipes LCG constants on 32-bit state.
func (r *RNG) Next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / 4294967296.0
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with non-positive bound")
	}
	v := int(r.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Choice returns a random index into a sequence of the given length.
func (r *RNG) Choice(length int) int {
	return r.Intn(length)
}

// Shuffle performs an in-place Fisher-Yates shuffle driven by the generator.
func (r *RNG) Shuffle(length int, swap func(i, j int)) {
	for i := length - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
