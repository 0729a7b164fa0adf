// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package layout provides generic big-endian bit-field helpers shared by
// the DistributedId and DistributedId128 binary layouts.
package layout

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Mask returns an unsigned value with the low bits set to 1. A
// non-positive bits returns 0; a bits at or above the type's own width
// returns the all-ones value for T (full mask, no truncation needed).
func Mask[T constraints.Unsigned](bits int) T {
	if bits <= 0 {
		return 0
	}
	var zero T
	width := int(unsafe.Sizeof(zero)) * 8
	if bits >= width {
		return ^zero
	}
	return T(1)<<uint(bits) - 1
}

// Field extracts the bits-wide field starting at the given bit offset
// from the low end of v (offset 0 is the least-significant bit).
func Field[T constraints.Unsigned](v T, offset, bits int) T {
	return (v >> uint(offset)) & Mask[T](bits)
}

// Pack writes value's low bits-wide field into dst at offset, leaving
// the remaining bits of dst untouched.
func Pack[T constraints.Unsigned](dst T, value T, offset, bits int) T {
	m := Mask[T](bits)
	return (dst &^ (m << uint(offset))) | ((value & m) << uint(offset))
}
