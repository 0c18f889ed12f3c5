// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzpi

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrTruncatedStream is returned when the input ends mid-token: between a
	// control byte and its first token payload, or inside a two-byte
	// back-reference.
	ErrTruncatedStream = errors.New("lzpi: truncated compressed stream")
	// ErrInputTooLarge is returned by CompressBytes/DecompressBytes when the
	// caller's MaxInputSize option is exceeded.
	ErrInputTooLarge = errors.New("lzpi: input exceeds MaxInputSize")
)
