package vmath

import "math/bits"

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each consumer owns its instance
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is remapped since xorshift has no zero state
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
// Uses Lemire's multiply-shift reduction
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	hi, _ := bits.Mul64(r.Next(), uint64(n))
	return int(hi)
}

// IntRange returns a value in [lo, hi], both inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// IntBetween returns a value in [lo, hi), lo when the range is empty
func (r *FastRand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Float32 returns a value in [0, 1)
func (r *FastRand) Float32() float32 {
	return float32(r.Next()>>40) / (1 << 24)
}
