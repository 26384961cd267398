package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// RNG is a PCG32 generator (https://www.pcg-random.org). The game draws
// all of its randomness from a single RNG instance, so a fixed seed
// replays bit-identical games.
type RNG struct {
	state uint64
	seq   uint64
}

// NewRNG creates a generator from a 128-bit seed. The second half
// selects the PCG stream; its low bit is forced to 1 as the algorithm
// requires an odd increment.
func NewRNG(state, seq uint64) *RNG {
	return &RNG{
		state: state,
		seq:   (seq << 1) | 1,
	}
}

// NewSeededRNG creates a generator seeded from the operating system's
// entropy source. Failure to gather entropy is a startup error; there
// is no fallback seed.
func NewSeededRNG() (*RNG, error) {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("game: cannot seed RNG: %w", err)
	}
	state := binary.LittleEndian.Uint64(buf[0:8])
	seq := binary.LittleEndian.Uint64(buf[8:16])
	return NewRNG(state, seq), nil
}

// Next advances the generator and returns a uniformly distributed
// 32-bit value.
func (r *RNG) Next() uint32 {
	r.state = r.state*6364136223846793005 + r.seq
	xorshifted := uint32(((r.state >> 18) ^ r.state) >> 27)
	rot := uint32(r.state >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Bounded returns a uniformly distributed value in [0, n), using
// rejection sampling to avoid modulo bias.
func (r *RNG) Bounded(n uint32) uint32 {
	var x, rem uint32
	for {
		x = r.Next()
		rem = x % n
		if x-rem <= -n {
			return rem
		}
	}
}

// Range returns a uniformly distributed value in [a, b], inclusive.
func (r *RNG) Range(a, b uint32) uint32 {
	return a + r.Bounded(b-a+1)
}
