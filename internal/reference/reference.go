// Package reference wraps third-party noise libraries as perlin.Sampler values
// so they can be compared against the native generator.
package reference

import (
	"GopherNoise/internal/config"
	"GopherNoise/perlin"

	goperlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

func init() {
	Register(config.BackendPerlin, func(tableSize int, seed int64) (perlin.Sampler, error) {
		g, err := perlin.NewWithSize(tableSize, seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
	Register(config.BackendGoPerlin, func(_ int, seed int64) (perlin.Sampler, error) {
		return NewGoPerlin(seed), nil
	})
	Register(config.BackendOpenSimplex, func(_ int, seed int64) (perlin.Sampler, error) {
		return NewOpenSimplex(seed), nil
	})
}

// GoPerlin adapts github.com/aquilax/go-perlin to a single-octave sampler in [0, 1].
type GoPerlin struct {
	noise *goperlin.Perlin
}

// NewGoPerlin uses the classic alpha=2, beta=2 parameters with one octave.
func NewGoPerlin(seed int64) *GoPerlin {
	return &GoPerlin{noise: goperlin.NewPerlin(2, 2, 1, seed)}
}

func (g *GoPerlin) Noise3D(x, y, z float64) float64 {
	return clamp01((g.noise.Noise3D(x, y, z) + 1) / 2)
}

// OpenSimplex adapts github.com/ojrac/opensimplex-go.
type OpenSimplex struct {
	noise opensimplex.Noise
}

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.NewNormalized(seed)}
}

func (o *OpenSimplex) Noise3D(x, y, z float64) float64 {
	return clamp01(o.noise.Eval3(x, y, z))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
