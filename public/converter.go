// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package public converts internal identifiers into an opaque, fixed-size
// public form that leaks none of the source identifier's structure
// (timestamp, ordering, encoding) to a holder who lacks the key.
//
// A PublicID is produced by encrypting exactly one AES block, so the
// transform is deterministic (the same input always yields the same
// PublicID under a given key) and exactly reversible, never probabilistic.
// This is a deliberate departure from typical AEAD usage: there is no
// nonce and no authentication tag, because the only goal is to hide
// structure from outsiders who do not hold the key, not to authenticate
// the ciphertext against tampering by one who might.
package public

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"math"
	"math/big"

	"github.com/sixafter/distid"
)

// PublicID is an opaque, fixed-size 128-bit public identifier.
type PublicID [16]byte

// Converter encodes and decodes PublicID values under a single AES key.
// A Converter is safe for concurrent use; cipher.Block implementations
// in the standard library tolerate concurrent Encrypt/Decrypt calls.
type Converter struct {
	block cipher.Block
	key   []byte
}

// NewConverter constructs a Converter from an AES key. key must be 16
// or 32 bytes (AES-128 or AES-256). The converter retains its own copy
// of key; the caller's slice is not retained.
func NewConverter(key []byte) (*Converter, error) {
	switch len(key) {
	case 16, 32:
	default:
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(key))
	copy(owned, key)
	return &Converter{block: block, key: owned}, nil
}

// Close zeroizes the converter's retained copy of the key. A Converter
// must not be used after Close.
func (c *Converter) Close() error {
	for i := range c.key {
		c.key[i] = 0
	}
	return nil
}

// Encode encrypts v into a PublicID. Supported types are uint64, int64
// (must be non-negative), [16]byte, distid.DistributedId, and
// distid.DistributedId128. Any other type returns ErrUnsupportedType.
func (c *Converter) Encode(v any) (PublicID, error) {
	var plain [16]byte

	switch val := v.(type) {
	case uint64:
		binary.BigEndian.PutUint64(plain[8:], val)
	case int64:
		if val < 0 {
			return PublicID{}, ErrNegativeValue
		}
		binary.BigEndian.PutUint64(plain[8:], uint64(val))
	case [16]byte:
		plain = val
	case distid.DistributedId128:
		plain = val.Bytes()
	case distid.DistributedId:
		b := val.Bytes()
		copy(plain[4:], b[:])
	default:
		return PublicID{}, ErrUnsupportedType
	}

	var out PublicID
	c.block.Encrypt(out[:], plain[:])
	return out, nil
}

// decrypt reverses the single-block encryption performed by Encode.
func (c *Converter) decrypt(pub PublicID) [16]byte {
	var plain [16]byte
	c.block.Decrypt(plain[:], pub[:])
	return plain
}

// TryDecodeU64 attempts to recover a uint64 previously encoded with
// Encode. It reports false, rather than an error, for any PublicID that
// does not decrypt to a value of this shape — including a PublicID that
// was never produced by this converter at all.
func (c *Converter) TryDecodeU64(pub PublicID) (uint64, bool) {
	plain := c.decrypt(pub)
	for _, b := range plain[:8] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(plain[8:]), true
}

// TryDecodeI64 attempts to recover an int64 previously encoded with
// Encode.
func (c *Converter) TryDecodeI64(pub PublicID) (int64, bool) {
	v, ok := c.TryDecodeU64(pub)
	if !ok || v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// TryDecodeU128 recovers the raw 16 bytes underlying pub. Unlike the
// other TryDecode* methods it always succeeds: every PublicID decrypts
// to some 16-byte value, which is always a valid [16]byte.
func (c *Converter) TryDecodeU128(pub PublicID) ([16]byte, bool) {
	return c.decrypt(pub), true
}

// TryDecodeDistributedID attempts to recover a distid.DistributedId
// previously encoded with Encode. It reports false for any decrypted
// value above 10^28-1, the largest 28-digit DistributedId.
func (c *Converter) TryDecodeDistributedID(pub PublicID) (distid.DistributedId, bool) {
	plain := c.decrypt(pub)
	for _, b := range plain[:4] {
		if b != 0 {
			return distid.DistributedId{}, false
		}
	}
	id, err := distid.FromBytes(plain[4:])
	if err != nil {
		return distid.DistributedId{}, false
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(28), nil)
	if id.Decimal().Cmp(limit) >= 0 {
		return distid.DistributedId{}, false
	}
	return id, true
}

// TryDecodeDistributedID128 attempts to recover a
// distid.DistributedId128 previously encoded with Encode. Like
// TryDecodeU128 it always succeeds.
func (c *Converter) TryDecodeDistributedID128(pub PublicID) (distid.DistributedId128, bool) {
	return distid.DistributedId128(c.decrypt(pub)), true
}
