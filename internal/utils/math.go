package utils

import (
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomIndex returns a random index into a collection of length n.
// Returns -1 for empty collections.
func RandomIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// Roller draws inclusive uniform integers. Game code depends on this instead of
// math/rand directly so tests can make draws deterministic.
type Roller interface {
	IntRange(min, max int) int
	Index(n int) int
}

type defaultRoller struct{}

// NewRoller returns a Roller backed by math/rand
func NewRoller() Roller {
	return defaultRoller{}
}

func (defaultRoller) IntRange(min, max int) int { return RandomInt(min, max) }

func (defaultRoller) Index(n int) int { return RandomIndex(n) }
