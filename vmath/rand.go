package vmath

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/samber/oops"
)

// Rand is a seedable xorshift64 generator
// Not safe for concurrent use; owned by the tick goroutine
type Rand struct {
	state uint64
}

// NewRand creates a generator, zero seed is remapped since xorshift never leaves zero
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float32 returns a value in [0, 1)
func (r *Rand) Float32() float32 {
	return float32(r.Next()>>40) / (1 << 24)
}

// Range returns a value in [lo, hi), lo when the range is empty
func (r *Rand) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float32()
}

// Streams holds the independent generators owned by one simulation
// Inaccuracy and Recoil are drawn separately so aim error never correlates across axes
type Streams struct {
	Inaccuracy *Rand
	Recoil     *Rand
	Placement  *Rand
	Buff       *Rand
}

// NewStreams derives one generator per concern from a single seed
func NewStreams(seed uint64) *Streams {
	sm := seed
	return &Streams{
		Inaccuracy: NewRand(splitmix(&sm)),
		Recoil:     NewRand(splitmix(&sm)),
		Placement:  NewRand(splitmix(&sm)),
		Buff:       NewRand(splitmix(&sm)),
	}
}

// splitmix64 step, spreads a low-entropy seed across derived streams
func splitmix(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NewSeed reads a high-entropy seed from crypto/rand
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, oops.In("vmath").Code("seed_unavailable").Wrapf(err, "read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
