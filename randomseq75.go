// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"io"
	"math/bits"
)

// random75HighMask masks the high word down to 11 bits.
const random75HighMask = (uint64(1) << 11) - 1

// random75IncrementMask masks an additive increment down to its low 58
// bits. Since 58 bits fit entirely within the low word, a masked
// increment never touches the high word directly; it can still carry
// into it via TryAddRandomBits' addition. Identical rationale to
// random48IncrementMask, scaled to the wider 75-bit field.
const random75IncrementMask = (uint64(1) << 58) - 1

// RandomSequence75 is a 75-bit (11+64) random pair used as the random
// component of a DistributedId128. Like RandomSequence48, successive
// values are combined with TryAddRandomBits to absorb bursts of IDs
// minted within the same millisecond.
//
// The zero value is invalid; always obtain one from NewRandomSequence75.
type RandomSequence75 struct {
	high uint64 // low 11 bits significant
	low  uint64 // full 64 bits significant
}

// NewRandomSequence75 draws 10 random bytes from r: the first 2 bytes
// (masked to 11 bits) become the high word, the remaining 8 bytes become
// the low word. A sampled value of exactly zero is replaced with 1 in
// the low word so the zero value of RandomSequence75 is never mistaken
// for one produced by this factory.
func NewRandomSequence75(r io.Reader) (RandomSequence75, error) {
	var buf [10]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return RandomSequence75{}, err
	}
	return newRandomSequence75FromBytes(buf), nil
}

// newRandomSequence75FromBytes builds a RandomSequence75 from exactly 10
// pre-sampled random bytes. It exists so CreateIDBatch can slice a single
// bulk CSPRNG read into per-item sequences instead of issuing n separate
// reads.
func newRandomSequence75FromBytes(buf [10]byte) RandomSequence75 {
	high := uint64(buf[0])<<8 | uint64(buf[1])
	high &= random75HighMask

	low := uint64(buf[2])<<56 | uint64(buf[3])<<48 | uint64(buf[4])<<40 |
		uint64(buf[5])<<32 | uint64(buf[6])<<24 | uint64(buf[7])<<16 |
		uint64(buf[8])<<8 | uint64(buf[9])

	if high == 0 && low == 0 {
		low = 1
	}
	return RandomSequence75{high: high, low: low}
}

// mustBeValid panics with a SentinelRandomSequenceError if r bypassed
// its factory.
func (r RandomSequence75) mustBeValid() {
	if r.high == 0 && r.low == 0 {
		panic(&SentinelRandomSequenceError{Type: "RandomSequence75"})
	}
}

// High12Bits returns the 12-bit field packed into DistributedId128's
// random-high position: the 11 bits of the high word followed by the
// top bit of the low word.
func (r RandomSequence75) High12Bits() uint64 {
	r.mustBeValid()
	return (r.high << 1) | (r.low >> 63)
}

// Low63Bits returns the low word with its top bit masked off, as packed
// into DistributedId128's trailing field. That top bit is the one
// appended to High12Bits.
func (r RandomSequence75) Low63Bits() uint64 {
	r.mustBeValid()
	return r.low & ((uint64(1) << 63) - 1)
}

// TryAddRandomBits adds the low 58 bits of other's value into r's value
// within the combined 75-bit field, propagating carry from the low word
// into the high word via bits.Add64. It reports whether the addition
// stayed within range; on overflow the returned sequence is the zero
// value and ok is false.
func (r RandomSequence75) TryAddRandomBits(other RandomSequence75) (sum RandomSequence75, ok bool) {
	r.mustBeValid()
	other.mustBeValid()

	increment := other.low & random75IncrementMask
	if increment == 0 {
		increment = 1
	}
	low, carry := bits.Add64(r.low, increment, 0)
	high := r.high + carry
	if high > random75HighMask {
		return RandomSequence75{}, false
	}
	if high == 0 && low == 0 {
		low = 1
	}
	return RandomSequence75{high: high, low: low}, true
}
