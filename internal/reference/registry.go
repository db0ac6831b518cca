package reference

import (
	"fmt"
	"sort"

	"GopherNoise/perlin"
)

// SamplerConstructor builds a sampler. tableSize is ignored by backends
// without a permutation table.
type SamplerConstructor func(tableSize int, seed int64) (perlin.Sampler, error)

var samplerRegistry = make(map[string]SamplerConstructor)

// Register makes a backend available to New. Registering a name twice replaces it.
func Register(name string, constructor SamplerConstructor) {
	samplerRegistry[name] = constructor
}

// Available lists registered backend names in sorted order.
func Available() []string {
	names := make([]string, 0, len(samplerRegistry))
	for name := range samplerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a sampler from the backend registered under name.
func New(name string, tableSize int, seed int64) (perlin.Sampler, error) {
	constructor, exists := samplerRegistry[name]
	if !exists {
		return nil, fmt.Errorf("reference: unknown backend %q", name)
	}
	return constructor(tableSize, seed)
}
