// Package perlin implements seeded 3D gradient noise using Ken Perlin's
// improved fade curve and a doubled permutation table as lattice hash.
//
// A Generator is immutable after construction; Noise3D and friends may be
// called from any number of goroutines without synchronisation. Octave
// summation and other compositions are left to callers.
package perlin

import (
	"math"

	"GopherNoise/internal/logger"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// DefaultZSlice is the z coordinate used by Noise2D. A non-integer slice avoids
// sampling the z=0 lattice plane, where every corner contribution along z vanishes.
const DefaultZSlice = 0.01

// Sampler is anything that produces a scalar field value in [0, 1] at a point.
type Sampler interface {
	Noise3D(x, y, z float64) float64
}

// Generator evaluates gradient noise from a seeded permutation table.
type Generator struct {
	perm []int // 2*size entries, second half duplicates the first
	mask int
	seed int64
}

var _ Sampler = (*Generator)(nil)

// New creates a generator with a table of DefaultTableSize entries.
func New(seed int64) *Generator {
	g, err := NewWithSize(DefaultTableSize, seed)
	if err != nil {
		// DefaultTableSize is a power of two
		panic(err)
	}
	return g
}

// NewWithSize creates a generator whose lattice repeats every size units.
// size must be a positive power of two.
func NewWithSize(size int, seed int64) (*Generator, error) {
	perm, err := BuildPermutationTable(size, seed)
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("Permutation table built",
		zap.Int64("seed", seed),
		zap.Int("tableSize", size))

	return &Generator{
		perm: perm,
		mask: size - 1,
		seed: seed,
	}, nil
}

// NewFromClock creates a generator seeded with the clock's current time in nanoseconds.
func NewFromClock(clock Clock) *Generator {
	return New(clock.Now().UnixNano())
}

// Seed returns the seed the permutation table was built from.
func (noise *Generator) Seed() int64 {
	return noise.seed
}

// TableSize returns the lattice period.
func (noise *Generator) TableSize() int {
	return noise.mask + 1
}

// hash maps a lattice corner to a pseudo-random table entry.
func (noise *Generator) hash(x, y, z int) int {
	return noise.perm[z+noise.perm[y+noise.perm[x]]]
}

// Noise3D returns the noise value at (x, y, z), in [0, 1].
func (noise *Generator) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	// Lower corner of the unit cube, wrapped into the table
	xi := int(fx) & noise.mask
	yi := int(fy) & noise.mask
	zi := int(fz) & noise.mask

	// Position inside the cube
	xd := x - fx
	yd := y - fy
	zd := z - fz

	u := fade(xd)
	v := fade(yd)
	w := fade(zd)

	x1 := lerp(
		grad(noise.hash(xi, yi, zi), xd, yd, zd),
		grad(noise.hash(xi+1, yi, zi), xd-1, yd, zd),
		u)
	x2 := lerp(
		grad(noise.hash(xi, yi+1, zi), xd, yd-1, zd),
		grad(noise.hash(xi+1, yi+1, zi), xd-1, yd-1, zd),
		u)
	y1 := lerp(x1, x2, v)

	x1 = lerp(
		grad(noise.hash(xi, yi, zi+1), xd, yd, zd-1),
		grad(noise.hash(xi+1, yi, zi+1), xd-1, yd, zd-1),
		u)
	x2 = lerp(
		grad(noise.hash(xi, yi+1, zi+1), xd, yd-1, zd-1),
		grad(noise.hash(xi+1, yi+1, zi+1), xd-1, yd-1, zd-1),
		u)
	y2 := lerp(x1, x2, v)

	// The blend peaks near +-1.036, so the mapped value is clamped. NaN passes through.
	return clamp01((lerp(y1, y2, w) + 1) / 2)
}

// Noise2D samples the DefaultZSlice plane.
func (noise *Generator) Noise2D(x, y float64) float64 {
	return noise.Noise3D(x, y, DefaultZSlice)
}

// NoiseVec is Noise3D for a point given as a vector.
func (noise *Generator) NoiseVec(p mgl64.Vec3) float64 {
	return noise.Noise3D(p[0], p[1], p[2])
}
