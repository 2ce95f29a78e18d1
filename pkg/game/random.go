package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Random is the source of every random draw made by the game: indicator
// position, reward rolls and blueprint chance. *rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0)
	Float64() float64
}

// NewRandom returns a pseudo-random source seeded with seed.
// It is not safe for concurrent use.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %v", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// rollRange returns a uniform integer in [lo, hi].
func rollRange(rnd Random, lo, hi int) int {
	return rnd.Intn(hi-lo+1) + lo
}
