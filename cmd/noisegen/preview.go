package main

import (
	"GopherNoise/perlin"

	"github.com/dgravesa/go-parallel/parallel"
)

// shades maps [0, 1] onto characters from dark to bright.
const shades = " .:-=+*#%@"

func shade(v float64) byte {
	i := int(v * float64(len(shades)))
	if i < 0 {
		i = 0
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// renderPreview shades a width x height window of the z slice, one row per line.
// Rows are sampled concurrently from the same sampler.
func renderPreview(sampler perlin.Sampler, width, height int, scale, z float64) []string {
	rows := make([]string, height)
	parallel.For(height, func(j, _ int) {
		line := make([]byte, width)
		for i := 0; i < width; i++ {
			line[i] = shade(sampler.Noise3D(float64(i)*scale, float64(j)*scale, z))
		}
		rows[j] = string(line)
	})
	return rows
}
