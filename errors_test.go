// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockExhaustedError_Error(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	err := &ClockExhaustedError{Bits: 45}
	is.Contains(err.Error(), "45")
}

func TestSentinelRandomSequenceError_Error(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	err := &SentinelRandomSequenceError{Type: "RandomSequence48"}
	is.Contains(err.Error(), "RandomSequence48")
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.NotEqual(ErrNilRandReader, ErrInvalidLeeway)
	is.NotEqual(ErrMalformedDecimal, ErrMalformedBytes)
}
