// Package random provides cryptographic seed generation helpers.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a math/rand generator seeded from crypto/rand.
// Falls back to a fixed seed only if the system entropy source fails,
// which keeps callers usable in degraded environments.
func NewRand() *rand.Rand {
	seed, err := NewSeed()
	if err != nil {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
