// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package distid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithGenerator_OverridesDefault(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sleep, _ := countingSleep()
	scoped := MustNewDistributedIdGenerator(
		WithClock(scriptedClock(42*time.Millisecond)),
		WithSleep(sleep),
	)

	ctx := WithGenerator(context.Background(), scoped)
	id := CreateIDContext(ctx)

	is.Equal(uint64(42), id.timestampMs())
}

func TestGeneratorFrom_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Same(defaultGenerator, GeneratorFrom(context.Background()))
}

func TestWithGenerator128_OverridesDefault(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sleep, _ := countingSleep()
	scoped := MustNewDistributedId128Generator(
		WithClock(func() time.Time { return distributedID128Epoch.Add(99 * time.Millisecond) }),
		WithSleep(sleep),
	)

	ctx := WithGenerator128(context.Background(), scoped)
	id := CreateID128Context(ctx)

	is.Equal(uint64(99), id.timestampMs())
}

func TestGenerator128From_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Same(defaultGenerator128, Generator128From(context.Background()))
}
