// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"math/big"
	"time"

	"github.com/sixafter/distid/internal/decimal"
	"github.com/sixafter/distid/internal/layout"
)

// distributedIDEpoch is the zero point for a DistributedId's 45-bit
// millisecond timestamp field.
var distributedIDEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// distributedIDDecimalWidth is the fixed width of a DistributedId's
// decimal string form: 2^93-1 has 28 decimal digits.
const distributedIDDecimalWidth = 28

// timestampBits45 is the width of DistributedId's timestamp field.
const timestampBits45 = 45

// timestampHighBits29 is the portion of the 45-bit timestamp stored in
// Hi, leaving 3 reserved zero bits above it in a 32-bit word.
const timestampHighBits29 = 29

// timestampLowBits16 is the portion of the 45-bit timestamp stored in
// the high 16 bits of Lo.
const timestampLowBits16 = timestampBits45 - timestampHighBits29

// randomBits48 is the width of DistributedId's random field, stored in
// the low 48 bits of Lo.
const randomBits48 = 48

// DistributedId is a 93-bit, roughly time-ordered identifier: a 45-bit
// millisecond timestamp followed by a 48-bit random word. It is stored
// as two machine words, Hi and Lo, so the zero value is meaningful (the
// identifier at the epoch with a zero random field) and comparisons are
// simple unsigned-integer comparisons.
//
// Canonically, a DistributedId is rendered as a 28-digit decimal string,
// which fits a fixed-scale DECIMAL(28,0) column without truncation.
type DistributedId struct {
	Hi uint32
	Lo uint64
}

// newDistributedId builds a DistributedId from a millisecond timestamp
// (relative to distributedIDEpoch) and a 48-bit random word.
func newDistributedId(timestampMs uint64, random RandomSequence48) DistributedId {
	top := layout.Field(timestampMs, timestampLowBits16, timestampHighBits29)
	bottom := layout.Field(timestampMs, 0, timestampLowBits16)

	var hi uint32
	hi = uint32(layout.Pack(uint64(hi), top, 0, timestampHighBits29))

	var lo uint64
	lo = layout.Pack(lo, bottom, randomBits48, timestampLowBits16)
	lo = layout.Pack(lo, random.Value(), 0, randomBits48)

	return DistributedId{Hi: hi, Lo: lo}
}

// timestampMs reconstructs the 45-bit millisecond timestamp embedded in
// the identifier.
func (id DistributedId) timestampMs() uint64 {
	top := layout.Field(uint64(id.Hi), 0, timestampHighBits29)
	bottom := layout.Field(id.Lo, randomBits48, timestampLowBits16)
	return top<<timestampLowBits16 | bottom
}

// Time returns the identifier's embedded timestamp.
func (id DistributedId) Time() time.Time {
	return time.UnixMilli(distributedIDEpoch.UnixMilli() + int64(id.timestampMs())).UTC()
}

// Random returns the identifier's 48-bit random field.
func (id DistributedId) Random() uint64 {
	return layout.Field(id.Lo, 0, randomBits48)
}

// Bytes returns the identifier's canonical 12-byte big-endian binary
// form: Hi, then Lo.
func (id DistributedId) Bytes() [12]byte {
	var b [12]byte
	b[0] = byte(id.Hi >> 24)
	b[1] = byte(id.Hi >> 16)
	b[2] = byte(id.Hi >> 8)
	b[3] = byte(id.Hi)
	for i := 0; i < 8; i++ {
		b[4+i] = byte(id.Lo >> (56 - 8*i))
	}
	return b
}

// FromBytes reconstructs a DistributedId from its canonical 12-byte
// binary form.
func FromBytes(b []byte) (DistributedId, error) {
	if len(b) != 12 {
		return DistributedId{}, ErrMalformedBytes
	}
	hi := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	var lo uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(b[4+i]) << (56 - 8*i)
	}
	return DistributedId{Hi: hi, Lo: lo}, nil
}

// Decimal returns the identifier's value as an arbitrary-precision
// integer, suitable for binding to a DECIMAL(28,0) column parameter.
func (id DistributedId) Decimal() *big.Int {
	n := new(big.Int).SetUint64(uint64(id.Hi))
	n.Lsh(n, 64)
	n.Or(n, new(big.Int).SetUint64(id.Lo))
	return n
}

// String renders the identifier as a fixed-width, 28-digit decimal
// string.
func (id DistributedId) String() string {
	return decimal.Format(id.Decimal(), distributedIDDecimalWidth)
}

// ParseDistributedId parses a 28-digit decimal string produced by
// String back into a DistributedId.
func ParseDistributedId(s string) (DistributedId, error) {
	n, err := decimal.Parse(s, distributedIDDecimalWidth)
	if err != nil {
		return DistributedId{}, ErrMalformedDecimal
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(n, 64)
	if !hi.IsUint64() {
		return DistributedId{}, ErrMalformedDecimal
	}
	return DistributedId{Hi: uint32(hi.Uint64()), Lo: lo.Uint64()}, nil
}

// Compare returns -1, 0, or 1 if id is less than, equal to, or greater
// than other, treating the pair (Hi, Lo) as a single 96-bit unsigned
// value. Because the timestamp occupies the high bits, Compare also
// orders IDs chronologically.
func (id DistributedId) Compare(other DistributedId) int {
	if id.Hi != other.Hi {
		if id.Hi < other.Hi {
			return -1
		}
		return 1
	}
	switch {
	case id.Lo < other.Lo:
		return -1
	case id.Lo > other.Lo:
		return 1
	default:
		return 0
	}
}

// Before reports whether id sorts strictly before other.
func (id DistributedId) Before(other DistributedId) bool { return id.Compare(other) < 0 }

// After reports whether id sorts strictly after other.
func (id DistributedId) After(other DistributedId) bool { return id.Compare(other) > 0 }

// Equal reports whether id and other have the same value.
func (id DistributedId) Equal(other DistributedId) bool { return id.Compare(other) == 0 }

// MarshalText implements encoding.TextMarshaler.
func (id DistributedId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DistributedId) UnmarshalText(text []byte) error {
	parsed, err := ParseDistributedId(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id DistributedId) MarshalBinary() ([]byte, error) {
	b := id.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *DistributedId) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
