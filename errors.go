// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRandReader is returned when a generator is configured with a
	// nil random source.
	ErrNilRandReader = errors.New("distid: nil random reader")

	// ErrInvalidLeeway is returned when a non-positive leeway is supplied
	// to a DistributedIdGenerator.
	ErrInvalidLeeway = errors.New("distid: leeway must be positive")

	// ErrMalformedDecimal is returned by Parse* functions when the input
	// is not a well-formed fixed-width decimal string.
	ErrMalformedDecimal = errors.New("distid: malformed decimal identifier")

	// ErrMalformedBytes is returned by FromBytes when the input slice
	// has the wrong length.
	ErrMalformedBytes = errors.New("distid: malformed identifier bytes")
)

// ClockExhaustedError is panicked by CreateID/CreateUUID when the wall
// clock has advanced past the range representable by a generator's
// timestamp field. This is the only fatal condition a generator can
// encounter; every other irregularity (contention, bursts, small clock
// rewinds) is absorbed silently.
type ClockExhaustedError struct {
	// Bits is the width of the overflowed timestamp field (45 or 48).
	Bits int
}

func (e *ClockExhaustedError) Error() string {
	return fmt.Sprintf("distid: clock exhausted %d-bit timestamp field", e.Bits)
}

// SentinelRandomSequenceError is panicked when a RandomSequence48 or
// RandomSequence75 value that bypassed its factory (the Go zero value)
// is used in an operation that requires a non-zero sequence. It exists
// only to catch misuse of these internal value types; a caller that
// always constructs sequences via NewRandomSequence48/NewRandomSequence75
// will never observe it.
type SentinelRandomSequenceError struct {
	Type string
}

func (e *SentinelRandomSequenceError) Error() string {
	return fmt.Sprintf("distid: %s used without going through its factory", e.Type)
}
