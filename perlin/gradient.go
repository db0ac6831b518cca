package perlin

import (
	"github.com/go-gl/mathgl/mgl64"
)

// gradients holds the 12 edge midpoints of a cube, indexed by the low 4 bits
// of a corner hash. Entries 12-15 repeat (1,1,0), (-1,1,0), (0,-1,1) and
// (0,-1,-1) so that every 4-bit value selects a vector.
var gradients = [16]mgl64.Vec3{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
}

// grad returns the dot product of the hashed gradient with the offset (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	return gradients[hash&0xF].Dot(mgl64.Vec3{x, y, z})
}

// fade is the quintic ease curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
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
