// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import (
	"bufio"
	"fmt"
	"io"
)

// Decompress reads an lzpi-encoded stream from r and writes the original
// bytes to w. opts may be nil to use defaults. The decoder's output ring is
// drawn from a pool and returned on every return path.
func Decompress(r io.Reader, w io.Writer, opts *DecompressOptions) error {
	opts = opts.orDefault()
	log := opts.logger()

	br := bufio.NewReaderSize(r, opts.bufSize())
	bw := bufio.NewWriterSize(w, opts.bufSize())

	d := acquireDecoder()
	defer releaseDecoder(d)
	d.r = br
	d.w = bw

	log.Debug("lzpi: decompress start")

	if err := d.run(); err != nil {
		_ = bw.Flush()
		log.WithError(err).Error("lzpi: decompress failed")
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("lzpi: write: %w", err)
	}

	log.Debug("lzpi: decompress done")
	return nil
}
