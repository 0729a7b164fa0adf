// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"context"
	"fmt"
)

var (
	defaultGenerator    *DistributedIdGenerator
	defaultGenerator128 *DistributedId128Generator
)

func init() {
	var err error

	defaultGenerator, err = NewDistributedIdGenerator()
	if err != nil {
		panic(fmt.Sprintf("distid: failed to initialize default generator: %v", err))
	}

	defaultGenerator128, err = NewDistributedId128Generator()
	if err != nil {
		panic(fmt.Sprintf("distid: failed to initialize default 128-bit generator: %v", err))
	}
}

// MustNewDistributedIdGenerator is like NewDistributedIdGenerator but
// panics instead of returning an error. It simplifies safe
// initialization of package-level generator variables.
func MustNewDistributedIdGenerator(opts ...Option) *DistributedIdGenerator {
	gen, err := NewDistributedIdGenerator(opts...)
	if err != nil {
		panic(err)
	}
	return gen
}

// MustNewDistributedId128Generator is like NewDistributedId128Generator
// but panics instead of returning an error.
func MustNewDistributedId128Generator(opts ...Option) *DistributedId128Generator {
	gen, err := NewDistributedId128Generator(opts...)
	if err != nil {
		panic(err)
	}
	return gen
}

// CreateID returns the next DistributedId from the shared default
// generator.
func CreateID() DistributedId {
	return defaultGenerator.CreateID()
}

// CreateIDContext returns the next DistributedId from the generator
// bound to ctx via WithGenerator, or the shared default generator if
// none was bound.
func CreateIDContext(ctx context.Context) DistributedId {
	return GeneratorFrom(ctx).CreateID()
}

// CreateID128 returns the next DistributedId128 from the shared default
// generator.
func CreateID128() DistributedId128 {
	return defaultGenerator128.CreateID()
}

// CreateUUID128 returns the next DistributedId128 from the shared
// default generator, rendered in UUID terms.
func CreateUUID128() UUID {
	return defaultGenerator128.CreateUUID()
}

// CreateID128Context returns the next DistributedId128 from the
// generator bound to ctx via WithGenerator128, or the shared default
// generator if none was bound.
func CreateID128Context(ctx context.Context) DistributedId128 {
	return Generator128From(ctx).CreateID()
}
