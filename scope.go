// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import "context"

// contextKey is an unexported type so distid's context keys never
// collide with keys set by other packages.
type contextKey int

const (
	generatorContextKey contextKey = iota
	generator128ContextKey
)

// WithGenerator returns a copy of ctx carrying gen as the ambient
// DistributedIdGenerator for CreateIDContext. Go has no thread-local
// storage, so this context value takes the place of a per-call-tree
// "current generator" stack: nesting falls out naturally from
// context.Context's own parent chain, and there is nothing to restore
// when the nested context goes out of scope.
func WithGenerator(ctx context.Context, gen *DistributedIdGenerator) context.Context {
	return context.WithValue(ctx, generatorContextKey, gen)
}

// GeneratorFrom returns the DistributedIdGenerator stored in ctx by
// WithGenerator, or the shared default generator if none was set.
func GeneratorFrom(ctx context.Context) *DistributedIdGenerator {
	if gen, ok := ctx.Value(generatorContextKey).(*DistributedIdGenerator); ok {
		return gen
	}
	return defaultGenerator
}

// WithGenerator128 returns a copy of ctx carrying gen as the ambient
// DistributedId128Generator for CreateID128Context.
func WithGenerator128(ctx context.Context, gen *DistributedId128Generator) context.Context {
	return context.WithValue(ctx, generator128ContextKey, gen)
}

// Generator128From returns the DistributedId128Generator stored in ctx
// by WithGenerator128, or the shared default generator if none was set.
func Generator128From(ctx context.Context) *DistributedId128Generator {
	if gen, ok := ctx.Value(generator128ContextKey).(*DistributedId128Generator); ok {
		return gen
	}
	return defaultGenerator128
}
