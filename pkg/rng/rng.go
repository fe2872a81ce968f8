package rng

import "math/rand/v2"

// BitSource supplies independent uniform binary draws.
type BitSource interface {
	Bit() uint8
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bit returns 0 or 1 with equal probability.
func (r *RNG) Bit() uint8 {
	return uint8(r.r.IntN(2))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Sequence replays a fixed list of bits, wrapping around when exhausted.
// It is mostly useful in tests that need a known random row.
type Sequence struct {
	bits []uint8
	pos  int
}

// NewSequence returns a Sequence over bits. Values other than 0 are treated as 1.
func NewSequence(bits ...uint8) *Sequence {
	return &Sequence{bits: bits}
}

// Bit returns the next bit of the sequence, or 0 when the sequence is empty.
func (s *Sequence) Bit() uint8 {
	if len(s.bits) == 0 {
		return 0
	}
	b := s.bits[s.pos%len(s.bits)]
	s.pos++
	if b != 0 {
		return 1
	}
	return 0
}

// FillBinary fills the buffer with 0/1 values drawn from src.
func FillBinary(src BitSource, buf []uint8) {
	for i := range buf {
		buf[i] = src.Bit()
	}
}
