// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(uint64(0), Mask[uint64](0))
	is.Equal(uint64(0x0F), Mask[uint64](4))
	is.Equal(uint64(0xFFFF), Mask[uint64](16))
	is.Equal(^uint64(0), Mask[uint64](64))
	is.Equal(^uint64(0), Mask[uint64](100))
}

func TestFieldAndPack_RoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var v uint64
	v = Pack(v, 0x3FF, 4, 10)
	is.Equal(uint64(0x3FF), Field(v, 4, 10))

	v = Pack(v, 0b1011, 0, 4)
	is.Equal(uint64(0b1011), Field(v, 0, 4))
	is.Equal(uint64(0x3FF), Field(v, 4, 10), "packing a lower field must not disturb a higher one")
}

func TestPack_TruncatesOverwideValue(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var v uint64
	v = Pack(v, 0xFF, 0, 4)
	is.Equal(uint64(0x0F), Field(v, 0, 4), "value wider than the field must be truncated, not overflow into neighboring bits")
}
