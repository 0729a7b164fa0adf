// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package decimal renders wide unsigned integers as fixed-width decimal
// strings and parses them back. The decimal form is a presentation
// choice for DistributedId and DistributedId128; all arithmetic on the
// values themselves is integer, never decimal.
package decimal

import (
	"errors"
	"math/big"
)

// ErrMalformed is returned by Parse when s is not exactly width ASCII
// digits.
var ErrMalformed = errors.New("decimal: malformed fixed-width digit string")

// Format renders n as a decimal string zero-padded to exactly width
// digits. It panics if n is negative or does not fit in width digits;
// both are programmer errors in this package's callers, which only ever
// format values already known to fit their field width.
func Format(n *big.Int, width int) string {
	if n.Sign() < 0 {
		panic("decimal: cannot format a negative value")
	}
	s := n.String()
	if len(s) > width {
		panic("decimal: value does not fit in the requested width")
	}
	if len(s) == width {
		return s
	}
	padded := make([]byte, width)
	for i := range padded {
		padded[i] = '0'
	}
	copy(padded[width-len(s):], s)
	return string(padded)
}

// Parse parses s, which must be exactly width ASCII digits, into n.
func Parse(s string, width int) (*big.Int, error) {
	if len(s) != width {
		return nil, ErrMalformed
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, ErrMalformed
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrMalformed
	}
	return n, nil
}
