// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import "bytes"

// CompressBytes compresses src and returns the encoded stream. opts may be
// nil. If opts.MaxInputSize is set and src exceeds it, returns
// ErrInputTooLarge without compressing.
func CompressBytes(src []byte, opts *CompressOptions) ([]byte, error) {
	opts = opts.orDefault()
	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	var out bytes.Buffer
	if err := Compress(bytes.NewReader(src), &out, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressBytes decompresses src and returns the original bytes. opts may
// be nil. If opts.MaxInputSize is set and src exceeds it, returns
// ErrInputTooLarge without decompressing.
func DecompressBytes(src []byte, opts *DecompressOptions) ([]byte, error) {
	opts = opts.orDefault()
	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	var out bytes.Buffer
	if err := Decompress(bytes.NewReader(src), &out, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
