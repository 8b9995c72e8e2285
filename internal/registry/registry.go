// Package registry provides a global registry for tile generator factories.
// Generator kinds register themselves in init() functions, allowing the CLI
// to discover and instantiate them by name from configuration.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3/core"
)

// Info contains metadata about a registered generator kind.
type Info struct {
	ID    string
	Title string
}

// Factory builds a generator from its config section and the configured tile set.
type Factory func(cfg config.GeneratorConfig, tiles []string) (core.Generator[string], error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Typically called from an init() function.
// Panics if a generator with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the generator named by cfg.Kind.
// Returns an error if the kind is not registered or the factory rejects cfg.
func Create(cfg config.GeneratorConfig, tiles []string) (core.Generator[string], error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", cfg.Kind)
	}

	gen, err := f(cfg, tiles)
	if err != nil {
		return nil, fmt.Errorf("registry: generator %q: %w", cfg.Kind, err)
	}
	return gen, nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
