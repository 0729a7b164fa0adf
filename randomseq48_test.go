// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewRandomSequence48_MasksAndAvoidsZero verifies the factory stays
// within the 48-bit field and never returns the invalid zero value.
func TestNewRandomSequence48_MasksAndAvoidsZero(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := bytes.NewReader([]byte{0, 0, 0, 0, 0, 0})
	seq, err := NewRandomSequence48(r)

	is.NoError(err)
	is.Equal(uint64(1), seq.Value(), "an all-zero sample should be substituted with 1")
}

// TestNewRandomSequence48_PropagatesReadError verifies a short read is
// surfaced to the caller instead of silently returning a partial value.
func TestNewRandomSequence48_PropagatesReadError(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := bytes.NewReader([]byte{1, 2, 3})
	_, err := NewRandomSequence48(r)

	is.Error(err)
}

// TestRandomSequence48_TryAddRandomBits_WithinRange verifies addition
// within the 48-bit field succeeds and sums correctly.
func TestRandomSequence48_TryAddRandomBits_WithinRange(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a, err := NewRandomSequence48(bytes.NewReader([]byte{0, 0, 0, 0, 0, 10}))
	is.NoError(err)

	b, err := NewRandomSequence48(bytes.NewReader([]byte{0, 0, 0, 0, 0, 20}))
	is.NoError(err)

	sum, ok := a.TryAddRandomBits(b)
	is.True(ok)
	is.Equal(uint64(30), sum.Value())
}

// TestRandomSequence48_TryAddRandomBits_Overflow verifies an addition
// that would exceed the 48-bit field reports failure without panicking.
func TestRandomSequence48_TryAddRandomBits_Overflow(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a, err := NewRandomSequence48(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
	is.NoError(err)

	b, err := NewRandomSequence48(bytes.NewReader([]byte{0, 0, 0, 0, 0, 1}))
	is.NoError(err)

	_, ok := a.TryAddRandomBits(b)
	is.False(ok)
}

// TestRandomSequence48_ZeroValuePanics verifies that using a
// RandomSequence48 which bypassed NewRandomSequence48 panics rather than
// silently behaving as a valid sequence.
func TestRandomSequence48_ZeroValuePanics(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var zero RandomSequence48
	is.Panics(func() { zero.Value() })
}
