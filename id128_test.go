// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustRandomSequence75(t *testing.T, high uint16, low uint64) RandomSequence75 {
	t.Helper()
	var buf [10]byte
	buf[0] = byte(high >> 8)
	buf[1] = byte(high)
	for i := 0; i < 8; i++ {
		buf[2+i] = byte(low >> (56 - 8*i))
	}
	return newRandomSequence75FromBytes(buf)
}

func TestNewDistributedId128_TimestampRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 0x123, 0x1122334455667788)
	id := newDistributedId128(123456789, r)

	is.Equal(uint64(123456789), id.timestampMs())
	is.Equal(7, id.Version())
}

func TestDistributedId128_BytesRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 0x7FF, ^uint64(0))
	id := newDistributedId128(99, r)

	b := id.Bytes()
	parsed, err := FromBytes128(b[:])

	is.NoError(err)
	is.Equal(id, parsed)
}

func TestDistributedId128_StringRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 0x42, 0xDEADBEEF)
	id := newDistributedId128(7, r)

	s := id.String()
	is.Len(s, distributedID128DecimalWidth)

	parsed, err := ParseDistributedId128(s)
	is.NoError(err)
	is.Equal(id, parsed)
}

func TestDistributedId128_UUIDStringRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 0x42, 0xDEADBEEF)
	id := newDistributedId128(7, r)

	s := id.UUIDString()
	is.Len(s, 36)

	var decoded DistributedId128
	is.NoError(decoded.UnmarshalText([]byte(s)))
	is.Equal(id, decoded)
}

func TestDistributedId128_Compare(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 1, 1)
	earlier := newDistributedId128(1, r)
	later := newDistributedId128(2, r)

	is.True(earlier.Before(later))
	is.True(later.After(earlier))
	is.True(earlier.Equal(earlier))
}

func TestDistributedId128_SQLValueScan(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := mustRandomSequence75(t, 5, 6)
	id := newDistributedId128(42, r)

	v, err := id.Value()
	is.NoError(err)

	var scanned DistributedId128
	is.NoError(scanned.Scan(v))
	is.Equal(id, scanned)

	var scannedFromText DistributedId128
	is.NoError(scannedFromText.Scan(id.UUIDString()))
	is.Equal(id, scannedFromText)
}

func TestDistributedId128_ScanRejectsUnsupportedType(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var id DistributedId128
	err := id.Scan(42)
	is.Error(err)
}
