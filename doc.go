// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzpi implements a streaming LZSS-family compressor and decompressor
with a bit-packed control-byte framing.

The window is a dual-ring sliding buffer: a bounded dictionary of
already-consumed bytes and a bounded lookahead of not-yet-consumed bytes,
sharing one physical buffer so matches can span both regions without
copying. Matches are found with a Knuth-Morris-Pratt failure table built
from the lookahead, and every eight literal/back-reference tokens are
grouped under one control byte so the decoder can recover token boundaries
without any other escape mechanism.

# Compress

	err := lzpi.Compress(r, w, nil)

From and to byte slices:

	out, err := lzpi.CompressBytes(data, nil)

# Decompress

	err := lzpi.Decompress(r, w, nil)
	out, err := lzpi.DecompressBytes(compressed, nil)

Options may be nil for both directions; see CompressOptions and
DecompressOptions.
*/
package lzpi
