package domain

import "math/bits"

// DigitSet is a set of digits 1-9 packed into a 9-bit mask (bit n set means
// digit n is a member). Fixed-width so that copies are free and intersection
// is a single AND.
type DigitSet uint16

// FullDigitSet contains every digit 1-9.
const FullDigitSet DigitSet = 0b1111111110

// Add returns the set with v included.
func (s DigitSet) Add(v uint8) DigitSet { return s | 1<<v }

// Remove returns the set with v excluded.
func (s DigitSet) Remove(v uint8) DigitSet { return s &^ (1 << v) }

// Has reports membership of v.
func (s DigitSet) Has(v uint8) bool { return s&(1<<v) != 0 }

// Intersect returns the digits present in both sets.
func (s DigitSet) Intersect(o DigitSet) DigitSet { return s & o }

// Size returns the number of digits in the set.
func (s DigitSet) Size() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single member of a size-1 set.
func (s DigitSet) Sole() uint8 { return uint8(bits.TrailingZeros16(uint16(s))) }

// Digits returns the members in ascending order. The canonical order keeps
// candidate enumeration, and therefore the search, deterministic.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Size())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
