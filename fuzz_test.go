// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzParseDistributedId fuzzes ParseDistributedId with arbitrary
// strings, asserting it never panics and that whatever it does accept
// round-trips through String.
func FuzzParseDistributedId(f *testing.F) {
	f.Add("0000000000000000000000000000")
	f.Add("not-a-number")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		is := assert.New(t)

		id, err := ParseDistributedId(s)
		if err != nil {
			return
		}
		is.Equal(s, id.String())
	})
}

// FuzzFromBytes fuzzes FromBytes with arbitrary byte slices, asserting
// it never panics and that a successful decode round-trips through
// Bytes.
func FuzzFromBytes(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 12))

	f.Fuzz(func(t *testing.T, b []byte) {
		is := assert.New(t)

		id, err := FromBytes(b)
		if err != nil {
			return
		}
		got := id.Bytes()
		is.Equal(b, got[:])
	})
}

// FuzzParseDistributedId128 mirrors FuzzParseDistributedId for the
// 128-bit identifier.
func FuzzParseDistributedId128(f *testing.F) {
	f.Add("00000000000000000000000000000000000000")
	f.Add("garbage")

	f.Fuzz(func(t *testing.T, s string) {
		is := assert.New(t)

		id, err := ParseDistributedId128(s)
		if err != nil {
			return
		}
		is.Equal(s, id.String())
	})
}
