// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import (
	"bufio"
	"fmt"
	"io"
)

// Compress reads raw bytes from r and writes the lzpi-encoded stream to w.
// opts may be nil to use defaults. The window and failure table used during
// encoding are drawn from a pool and returned on every return path.
func Compress(r io.Reader, w io.Writer, opts *CompressOptions) error {
	opts = opts.orDefault()
	log := opts.logger()

	br := bufio.NewReaderSize(r, opts.bufSize())
	bw := bufio.NewWriterSize(w, opts.bufSize())

	cs := acquireCompressState()
	defer releaseCompressState(cs)

	enc := newEncoder(bw)

	fail := func(err error) error {
		_ = bw.Flush()
		log.WithError(err).Error("lzpi: compress failed")
		return err
	}

	log.Debug("lzpi: compress start")

	tokens := 0
	for {
		_, err := cs.win.fill(br)
		if err != nil {
			return fail(fmt.Errorf("lzpi: read: %w", err))
		}

		if cs.win.look.size() == 0 {
			break
		}

		cs.win.buildFailureTable(&cs.fail, cs.win.look.size())

		tok, ok := cs.win.next(&cs.fail)
		if !ok {
			break
		}
		if err := enc.put(tok); err != nil {
			return fail(err)
		}
		tokens++
	}

	if err := enc.flush(); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(fmt.Errorf("lzpi: write: %w", err))
	}

	log.WithField("tokens", tokens).Debug("lzpi: compress done")
	return nil
}
