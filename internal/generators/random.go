package generators

// RNG is a deterministic pseudo-random number generator (xorshift64).
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// Uint64 returns the next random uint64.
func (r *RNG) Uint64() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Random picks tiles uniformly from a fixed set.
// The same seed always yields the same stream.
type Random[T comparable] struct {
	tiles []T
	rng   *RNG
}

// NewRandom creates a seeded generator over tiles.
func NewRandom[T comparable](seed uint64, tiles ...T) (*Random[T], error) {
	if len(tiles) == 0 {
		return nil, ErrEmptySequence
	}
	t := make([]T, len(tiles))
	copy(t, tiles)
	return &Random[T]{tiles: t, rng: NewRNG(seed)}, nil
}

// Next returns a random tile. It never fails.
func (r *Random[T]) Next() (T, error) {
	return r.tiles[r.rng.Intn(len(r.tiles))], nil
}
