// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"io"
	"time"

	ctrdrbg "github.com/sixafter/aes-ctr-drbg"
	prng "github.com/sixafter/prng-chacha"
)

// defaultLeeway is the burst-absorption window used by DistributedIdGenerator.
const defaultLeeway = time.Second

// ConfigOptions holds the configurable parameters for a generator.
// It is used with the functional-options pattern: construct one with its
// defaults, then apply each [Option] in order.
type ConfigOptions struct {
	// Clock returns the current wall-clock time. Defaults to time.Now.
	// Tests inject a deterministic or scripted clock here.
	Clock func() time.Time

	// Sleep blocks the calling goroutine for d. Defaults to time.Sleep.
	// Tests inject a no-op or counting sleeper to avoid real delays.
	Sleep func(d time.Duration)

	// RandReader is the source of cryptographically secure randomness
	// used to build RandomSequence48/RandomSequence75 values. Defaults
	// to the package-level github.com/sixafter/aes-ctr-drbg reader.
	RandReader io.Reader

	// Leeway is the burst-absorption window used only by
	// DistributedIdGenerator (spec ​§4.3). DistributedId128Generator
	// ignores this field; it has no leeway by design.
	Leeway time.Duration
}

// Option configures a [ConfigOptions] value.
type Option func(*ConfigOptions)

// WithClock overrides the generator's notion of "now". Intended for
// tests that need a fixed or scripted sequence of timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *ConfigOptions) { c.Clock = clock }
}

// WithSleep overrides the generator's blocking sleep primitive.
// Intended for tests that want to observe or eliminate the 1ms sleeps
// a generator may perform under burst or clock-rewind conditions.
func WithSleep(sleep func(d time.Duration)) Option {
	return func(c *ConfigOptions) { c.Sleep = sleep }
}

// WithRandReader overrides the CSPRNG source used to build random
// sequences. The reader must never block indefinitely; it is called
// while the generator does not hold its mutex for the initial sample,
// but is expected to return quickly.
func WithRandReader(r io.Reader) Option {
	return func(c *ConfigOptions) { c.RandReader = r }
}

// WithLeeway overrides DistributedIdGenerator's burst-absorption window.
// Has no effect on DistributedId128Generator. A non-positive duration
// is rejected with ErrInvalidLeeway at construction time.
func WithLeeway(d time.Duration) Option {
	return func(c *ConfigOptions) { c.Leeway = d }
}

// WithFastRandomSource selects github.com/sixafter/prng-chacha as the
// CSPRNG backend instead of the default AES-CTR-DRBG one. ChaCha8-based
// generation trades a (debatable) reduction in hardware-backed assurance
// for throughput; use it when a generator is on a very hot path and the
// default AES-CTR-DRBG reader shows up in profiles.
func WithFastRandomSource() Option {
	return func(c *ConfigOptions) { c.RandReader = prng.Reader }
}

// newConfigOptions builds the default configuration, applies opts in
// order, then validates the result. It returns ErrNilRandReader if an
// option cleared RandReader, or ErrInvalidLeeway if an option set a
// non-positive Leeway.
func newConfigOptions(opts ...Option) (*ConfigOptions, error) {
	c := &ConfigOptions{
		Clock:      time.Now,
		Sleep:      time.Sleep,
		RandReader: ctrdrbg.Reader,
		Leeway:     defaultLeeway,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.RandReader == nil {
		return nil, ErrNilRandReader
	}
	if c.Leeway <= 0 {
		return nil, ErrInvalidLeeway
	}
	return c, nil
}
