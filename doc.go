// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package distid generates distributed, roughly time-ordered identifiers
// for use as database primary keys and correlation IDs, without requiring
// a coordinator, a leased node ID, or a central registration process.
//
// Two identifier shapes are provided:
//
//   - DistributedId: a 93-bit value, canonically rendered as a 28-digit
//     decimal string, suitable for a fixed-scale DECIMAL(28,0) column.
//   - DistributedId128: a 122-bit value shaped as a version-7 UUID, for
//     systems that already speak UUID.
//
// Both are produced by long-lived, process-wide generators that are safe
// for concurrent use:
//
//	gen, err := distid.NewDistributedIdGenerator()
//	id := gen.CreateID()
//
//	gen128, err := distid.NewDistributedId128Generator()
//	id := gen128.CreateID()
//	u := gen128.CreateUUID()
//
// Package-level convenience functions use shared default generators:
//
//	id := distid.CreateID()
//	id128 := distid.CreateID128()
//
// # Monotonicity
//
// Within a single generator instance, successive IDs are strictly
// increasing unless the wall clock is rewound by more than the
// generator's leeway, in which case a single non-monotonic jump is
// accepted rather than blocking indefinitely. See [DistributedIdGenerator]
// and [DistributedId128Generator] for the exact state machines.
//
// # Public identifiers
//
// The public subpackage, distid/public, converts an internal ID into an
// opaque, AES-encrypted 128-bit form that leaks none of the ID's
// structure to holders who do not have the key:
//
//	conv, _ := public.NewConverter(key)
//	pub, _ := conv.Encode(id)
//	back, ok := conv.TryDecodeDistributedID(pub)
//
// # Scoping generators for tests
//
// Go has no thread-local storage, so the ambient "current generator"
// used in some ecosystems is implemented here via context.Context
// propagation, which reaches descendant goroutines that share the
// context:
//
//	ctx = distid.WithGenerator(ctx, testGenerator)
//	id := distid.CreateIDContext(ctx)
package distid
