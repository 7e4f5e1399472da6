package battle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const prngStream = 0x5eed_5b5b_c0ff_ee00

// PRNG is the single seeded random source of a battle. Two PRNGs built from
// the same seed produce the same sequence.
type PRNG struct {
	seed int64
	r    *rand.Rand
}

func NewPRNG(seed int64) *PRNG {
	return &PRNG{
		seed: seed,
		r:    rand.New(rand.NewPCG(uint64(seed), prngStream)),
	}
}

func (p *PRNG) Seed() int64 {
	return p.seed
}

// Random returns an integer in [0, n). It returns 0 when n <= 0.
func (p *PRNG) Random(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.IntN(n)
}

// RandomChance returns true with probability numerator/denominator.
func (p *PRNG) RandomChance(numerator, denominator int) bool {
	if denominator <= 0 {
		return false
	}
	return p.Random(denominator) < numerator
}

// NewSeed generates a battle seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
