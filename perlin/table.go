package perlin

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultTableSize is the permutation size used by New. Must be a power of 2.
const DefaultTableSize = 256

// ErrInvalidTableSize is returned when a table size is not a positive power of two.
var ErrInvalidTableSize = errors.New("perlin: table size must be a positive power of two")

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BuildPermutationTable returns a seeded permutation of 0..size-1 followed by
// a copy of itself, 2*size entries in total.
//
// Each step i swaps entry i with entry j, where j is a signed 32-bit draw from
// a rand.Source seeded with seed, reduced with floor-mod: j = ((r % size) + size) % size.
func BuildPermutationTable(size int, seed int64) ([]int, error) {
	if !isPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTableSize, size)
	}

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < size; i++ {
		r := int(int32(rng.Uint32()))
		j := ((r % size) + size) % size
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Second half lets hash lookups add an offset of up to size-1 without wrapping
	table := make([]int, size*2)
	copy(table, perm)
	copy(table[size:], perm)
	return table, nil
}

// MustBuildPermutationTable is like BuildPermutationTable but panics on an invalid size.
func MustBuildPermutationTable(size int, seed int64) []int {
	table, err := BuildPermutationTable(size, seed)
	if err != nil {
		panic(err)
	}
	return table
}
