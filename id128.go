// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/sixafter/distid/internal/decimal"
)

// distributedID128Epoch is the zero point for a DistributedId128's
// 48-bit millisecond timestamp field. Fixed at 1700-01-01 rather than
// the Unix epoch so that two independent implementations encode the
// same instant to the same bits; an arbitrary per-implementation epoch
// would break binary interoperability.
var distributedID128Epoch = time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC)

// distributedID128DecimalWidth is the fixed decimal width of a
// DistributedId128's canonical string form: 38 digits, holding every
// value produced through roughly the year 4000. A timestamp field
// large enough to push a value past 38 digits is outside the supported
// range and Format will panic rather than render a wider string.
const distributedID128DecimalWidth = 38

const (
	id128TimestampBits = 48
	id128VersionNibble = 0x7
)

// DistributedId128 is a 122-bit, roughly time-ordered identifier shaped
// like a version-7 UUID: a 48-bit millisecond timestamp, a 0x7 version
// nibble, a 12-bit random field, a reserved bit, and a 63-bit random
// field, packed into 16 bytes as:
//
//	byte 0-5:  48-bit timestamp, big-endian
//	byte 6:    0x7_ version nibble | top 4 bits of the 12-bit random field
//	byte 7:    low 8 bits of the 12-bit random field
//	byte 8:    reserved bit (always 0) | top 7 bits of the 63-bit random field
//	byte 9-15: low 56 bits of the 63-bit random field
//
// DistributedId128 has no leeway: a generator never accepts a burst
// beyond what the random field can absorb without a short sleep.
type DistributedId128 [16]byte

// UUID is an alias for DistributedId128, for code that wants to speak
// in UUID terms at call sites.
type UUID = DistributedId128

func newDistributedId128(timestampMs uint64, random RandomSequence75) DistributedId128 {
	var id DistributedId128

	id[0] = byte(timestampMs >> 40)
	id[1] = byte(timestampMs >> 32)
	id[2] = byte(timestampMs >> 24)
	id[3] = byte(timestampMs >> 16)
	id[4] = byte(timestampMs >> 8)
	id[5] = byte(timestampMs)

	high := random.High12Bits() // 12 significant bits
	id[6] = byte(id128VersionNibble<<4) | byte((high>>8)&0x0F)
	id[7] = byte(high)

	low := random.Low63Bits()
	id[8] = byte((low >> 56) & 0x7F)
	id[9] = byte(low >> 48)
	id[10] = byte(low >> 40)
	id[11] = byte(low >> 32)
	id[12] = byte(low >> 24)
	id[13] = byte(low >> 16)
	id[14] = byte(low >> 8)
	id[15] = byte(low)

	return id
}

func (id DistributedId128) timestampMs() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Time returns the identifier's embedded timestamp.
func (id DistributedId128) Time() time.Time {
	return time.UnixMilli(distributedID128Epoch.UnixMilli() + int64(id.timestampMs())).UTC()
}

// Version returns the identifier's version nibble, always 7.
func (id DistributedId128) Version() int {
	return int(id[6] >> 4)
}

// Bytes returns the identifier's 16-byte binary form.
func (id DistributedId128) Bytes() [16]byte {
	return id
}

// FromBytes128 reconstructs a DistributedId128 from its canonical
// 16-byte binary form.
func FromBytes128(b []byte) (DistributedId128, error) {
	if len(b) != 16 {
		return DistributedId128{}, ErrMalformedBytes
	}
	var id DistributedId128
	copy(id[:], b)
	return id, nil
}

// Decimal returns the identifier's value as an arbitrary-precision
// integer.
func (id DistributedId128) Decimal() *big.Int {
	return new(big.Int).SetBytes(id[:])
}

// String renders the identifier as a fixed-width, 38-digit decimal
// string.
func (id DistributedId128) String() string {
	return decimal.Format(id.Decimal(), distributedID128DecimalWidth)
}

// ParseDistributedId128 parses a 38-digit decimal string produced by
// String back into a DistributedId128.
func ParseDistributedId128(s string) (DistributedId128, error) {
	n, err := decimal.Parse(s, distributedID128DecimalWidth)
	if err != nil {
		return DistributedId128{}, ErrMalformedDecimal
	}
	b := n.Bytes()
	if len(b) > 16 {
		return DistributedId128{}, ErrMalformedDecimal
	}
	var id DistributedId128
	copy(id[16-len(b):], b)
	return id, nil
}

// UUIDString renders the identifier in canonical 8-4-4-4-12 hyphenated
// hexadecimal UUID form.
func (id DistributedId128) UUIDString() string {
	var buf [36]byte
	hex.Encode(buf[0:8], id[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], id[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], id[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], id[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], id[10:16])
	return string(buf[:])
}

// Compare returns -1, 0, or 1 if id is less than, equal to, or greater
// than other, comparing the 16 bytes lexicographically. Because the
// timestamp occupies the leading bytes, Compare also orders IDs
// chronologically.
func (id DistributedId128) Compare(other DistributedId128) int {
	for i := range id {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Before reports whether id sorts strictly before other.
func (id DistributedId128) Before(other DistributedId128) bool { return id.Compare(other) < 0 }

// After reports whether id sorts strictly after other.
func (id DistributedId128) After(other DistributedId128) bool { return id.Compare(other) > 0 }

// Equal reports whether id and other have the same value.
func (id DistributedId128) Equal(other DistributedId128) bool { return id == other }

// MarshalText implements encoding.TextMarshaler, rendering the
// identifier in its canonical UUID hyphenated hex form.
func (id DistributedId128) MarshalText() ([]byte, error) {
	return []byte(id.UUIDString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the
// canonical UUID hyphenated hex form.
func (id *DistributedId128) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return ErrMalformedDecimal
	}
	hexStr := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]
	b, err := hex.DecodeString(hexStr)
	if err != nil || len(b) != 16 {
		return ErrMalformedDecimal
	}
	copy(id[:], b)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id DistributedId128) MarshalBinary() ([]byte, error) {
	b := id.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *DistributedId128) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes128(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements database/sql/driver.Valuer, storing the identifier
// as its 16-byte binary form.
func (id DistributedId128) Value() (driver.Value, error) {
	b := id.Bytes()
	return b[:], nil
}

// Scan implements database/sql.Scanner, accepting a 16-byte []byte or
// a 36-byte UUID string.
func (id *DistributedId128) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == 16 {
			copy(id[:], v)
			return nil
		}
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("distid: cannot scan %T into DistributedId128", src)
	}
}
