package generators

import (
	"time"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3/core"
	"github.com/vovakirdan/match3/internal/registry"
)

func init() {
	registry.Register("cyclic", "Cyclic sequence", func(cfg config.GeneratorConfig, tiles []string) (core.Generator[string], error) {
		return NewCyclic(cfg.Values(tiles)...)
	})

	registry.Register("sequence", "Finite scripted sequence", func(cfg config.GeneratorConfig, tiles []string) (core.Generator[string], error) {
		values := cfg.Values(tiles)
		if len(values) == 0 {
			return nil, ErrEmptySequence
		}
		return NewQueue(values...), nil
	})

	registry.Register("random", "Seeded uniform random", func(cfg config.GeneratorConfig, tiles []string) (core.Generator[string], error) {
		return NewRandom(Seed(cfg.Seed), tiles...)
	})
}

// Seed converts a configured seed to an RNG seed.
// Zero selects a clock-based seed.
func Seed(seed int64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(seed)
}
