// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package public

import "errors"

var (
	// ErrInvalidKeyLength is returned by NewConverter when the supplied
	// key is not 16 or 32 bytes long.
	ErrInvalidKeyLength = errors.New("public: key must be 16 or 32 bytes")

	// ErrNegativeValue is returned by Encode when asked to encode a
	// negative int64; public identifiers never represent negative values.
	ErrNegativeValue = errors.New("public: cannot encode a negative value")

	// ErrUnsupportedType is returned by Encode when v is not one of the
	// types Converter knows how to encode.
	ErrUnsupportedType = errors.New("public: unsupported value type")
)
