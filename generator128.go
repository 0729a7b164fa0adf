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

// id128BigRewindMs is the rewind threshold past which
// DistributedId128Generator gives up waiting out the clock and accepts
// the wall clock's value as a new baseline. Unlike DistributedIdGenerator,
// this generator has no configurable leeway: any rewind this large is
// treated as a clock reset, not a burst to absorb.
const id128BigRewindMs = 1000

// DistributedId128Generator produces DistributedId128 values that are
// strictly increasing within the lifetime of the generator. Unlike
// DistributedIdGenerator, it has no leeway: a same-millisecond burst
// that exhausts the 75-bit random field causes the generator to sleep
// 1ms and retry, rather than advancing its stored timestamp ahead of
// the wall clock.
//
// A DistributedId128Generator is safe for concurrent use. The zero
// value is not usable; construct one with NewDistributedId128Generator.
type DistributedId128Generator struct {
	mu sync.Mutex

	clock      func() time.Time
	sleep      func(time.Duration)
	randReader io.Reader

	initialized       bool
	previousTimestamp uint64
	previousRandom    RandomSequence75
}

// NewDistributedId128Generator constructs a DistributedId128Generator.
// WithLeeway has no effect here; see DistributedId128Generator. It
// returns ErrNilRandReader or ErrInvalidLeeway if the resulting
// configuration is invalid.
func NewDistributedId128Generator(opts ...Option) (*DistributedId128Generator, error) {
	c, err := newConfigOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &DistributedId128Generator{
		clock:      c.Clock,
		sleep:      c.Sleep,
		randReader: c.RandReader,
	}, nil
}

func (g *DistributedId128Generator) nowMs() uint64 {
	return uint64(g.clock().UnixMilli() - distributedID128Epoch.UnixMilli())
}

// CreateID returns the next DistributedId128. It panics with
// *ClockExhaustedError if the wall clock has advanced past the range
// representable by the 48-bit timestamp field.
func (g *DistributedId128Generator) CreateID() DistributedId128 {
	fresh, err := NewRandomSequence75(g.randReader)
	if err != nil {
		panic(err)
	}
	return g.createOne(fresh)
}

// CreateUUID is an alias for CreateID that reads better at call sites
// already speaking in UUID terms.
func (g *DistributedId128Generator) CreateUUID() UUID {
	return g.CreateID()
}

// createOne implements the state machine shared by CreateID and
// CreateIDBatch, given an already-sampled random sequence.
func (g *DistributedId128Generator) createOne(fresh RandomSequence75) DistributedId128 {
	for {
		t := g.nowMs()
		if t >= uint64(1)<<id128TimestampBits {
			panic(&ClockExhaustedError{Bits: id128TimestampBits})
		}

		g.mu.Lock()
		id, done := g.tryCreateLocked(t, fresh)
		g.mu.Unlock()
		if done {
			return id
		}

		g.sleep(time.Millisecond)
	}
}

func (g *DistributedId128Generator) tryCreateLocked(t uint64, fresh RandomSequence75) (DistributedId128, bool) {
	switch {
	case !g.initialized:
		g.initialized = true
		g.previousTimestamp = t
		g.previousRandom = fresh
		return newDistributedId128(t, fresh), true

	case t > g.previousTimestamp:
		g.previousTimestamp = t
		g.previousRandom = fresh
		return newDistributedId128(t, fresh), true

	default:
		if sum, ok := g.previousRandom.TryAddRandomBits(fresh); ok {
			g.previousRandom = sum
			return newDistributedId128(g.previousTimestamp, sum), true
		}

		rewindMs := int64(g.previousTimestamp) - int64(t)
		if rewindMs >= id128BigRewindMs {
			g.previousTimestamp = t
			g.previousRandom = fresh
			return newDistributedId128(t, fresh), true
		}

		return DistributedId128{}, false
	}
}

// CreateIDBatch returns n strictly increasing DistributedId128 values,
// amortizing the CSPRNG read across n IDs (one bulk read instead of n)
// while preserving the normal per-ID locking and retry semantics.
func (g *DistributedId128Generator) CreateIDBatch(n int) ([]DistributedId128, error) {
	if n <= 0 {
		return nil, nil
	}

	buf := make([]byte, n*10)
	if _, err := io.ReadFull(g.randReader, buf); err != nil {
		return nil, err
	}

	ids := make([]DistributedId128, n)
	for i := 0; i < n; i++ {
		var item [10]byte
		copy(item[:], buf[i*10:(i+1)*10])
		ids[i] = g.createOne(newRandomSequence75FromBytes(item))
	}
	return ids, nil
}
