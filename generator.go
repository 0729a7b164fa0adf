// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"io"
	"sync"
	"time"
)

// DistributedIdGenerator produces DistributedId values that are strictly
// increasing within the lifetime of the generator, absorbing bursts of
// same-millisecond requests by incrementing the random field instead of
// blocking, and tolerating a bounded clock rewind (its leeway) by
// advancing the stored timestamp instead of the wall clock.
//
// A DistributedIdGenerator is safe for concurrent use. The zero value is
// not usable; construct one with NewDistributedIdGenerator.
type DistributedIdGenerator struct {
	mu sync.Mutex

	clock      func() time.Time
	sleep      func(time.Duration)
	randReader io.Reader
	leeway     time.Duration

	initialized       bool
	previousTimestamp uint64
	previousRandom    RandomSequence48
}

// NewDistributedIdGenerator constructs a DistributedIdGenerator. See
// WithClock, WithSleep, WithRandReader, WithLeeway, and
// WithFastRandomSource for configuration. It returns ErrNilRandReader
// or ErrInvalidLeeway if the resulting configuration is invalid.
func NewDistributedIdGenerator(opts ...Option) (*DistributedIdGenerator, error) {
	c, err := newConfigOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &DistributedIdGenerator{
		clock:      c.Clock,
		sleep:      c.Sleep,
		randReader: c.RandReader,
		leeway:     c.Leeway,
	}, nil
}

// nowMs returns the current time as milliseconds since distributedIDEpoch.
func (g *DistributedIdGenerator) nowMs() uint64 {
	return uint64(g.clock().UnixMilli() - distributedIDEpoch.UnixMilli())
}

// CreateID returns the next DistributedId. It panics with
// *ClockExhaustedError if the wall clock has advanced past the range
// representable by the 45-bit timestamp field, which will not happen
// before December 3014.
func (g *DistributedIdGenerator) CreateID() DistributedId {
	fresh, err := NewRandomSequence48(g.randReader)
	if err != nil {
		panic(err)
	}

	slept := false
	for {
		t := g.nowMs()
		if t >= uint64(1)<<timestampBits45 {
			panic(&ClockExhaustedError{Bits: timestampBits45})
		}

		g.mu.Lock()
		id, done := g.tryCreateLocked(t, fresh, slept)
		g.mu.Unlock()
		if done {
			return id
		}

		g.sleep(time.Millisecond)
		slept = true
	}
}

// tryCreateLocked implements one pass of the generator's state machine
// under g.mu:
//
//   - t is strictly ahead of the stored timestamp: advance and use it
//     (the common case).
//   - t is at or behind the stored timestamp but the random field still
//     has room: add fresh into it and reuse the stored timestamp (burst
//     absorption within the same millisecond).
//   - the random field is exhausted and the rewind is within leeway:
//     advance the stored timestamp by one millisecond without touching
//     the wall clock.
//   - the random field is exhausted and the rewind reaches or exceeds
//     leeway: ask
//     the caller to sleep 1ms and retry once; if the condition persists
//     even after that sleep, accept t as a new baseline rather than
//     blocking indefinitely, trading one non-monotonic jump for bounded
//     latency.
func (g *DistributedIdGenerator) tryCreateLocked(t uint64, fresh RandomSequence48, slept bool) (DistributedId, bool) {
	switch {
	case !g.initialized:
		g.initialized = true
		g.previousTimestamp = t
		g.previousRandom = fresh
		return newDistributedId(t, fresh), true

	case t > g.previousTimestamp:
		g.previousTimestamp = t
		g.previousRandom = fresh
		return newDistributedId(t, fresh), true

	default:
		if sum, ok := g.previousRandom.TryAddRandomBits(fresh); ok {
			g.previousRandom = sum
			return newDistributedId(g.previousTimestamp, sum), true
		}

		rewindMs := int64(g.previousTimestamp) - int64(t)
		leewayMs := int64(g.leeway / time.Millisecond)
		if rewindMs < leewayMs {
			g.previousTimestamp++
			g.previousRandom = fresh
			return newDistributedId(g.previousTimestamp, fresh), true
		}

		if !slept {
			return DistributedId{}, false
		}

		g.previousTimestamp = t
		g.previousRandom = fresh
		return newDistributedId(t, fresh), true
	}
}
