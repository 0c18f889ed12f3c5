// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import "io"

// window is the dual-ring sliding window: a dictionary of already-consumed
// bytes abutting a lookahead of not-yet-consumed bytes, both sharing one
// physical buffer so the searcher can compare across the boundary without
// copying. The invariant dict.hd == look.tl is maintained by construction:
// fill only advances look.hd, and shift advances dict.hd and look.tl by the
// same amount.
type window struct {
	buf  [bufSize]byte
	dict ring
	look ring
}

// at returns the byte at virtual index v.
func (w *window) at(v uint64) byte { return w.buf[mask(v)] }

// fill tops up the lookahead from r until it is full, r reaches EOF, or a
// read error occurs. Short reads that are not EOF loop, per a single read
// call delivering fewer bytes than requested.
func (w *window) fill(r io.Reader) (eof bool, err error) {
	for w.look.capacity() > 0 {
		u := w.look.capacity()
		if run := w.look.run(); run < u {
			u = run
		}

		start := mask(w.look.hd)
		n, rerr := r.Read(w.buf[start : start+int(u)])
		w.look.hd += uint64(n)

		if rerr != nil {
			if rerr == io.EOF {
				return true, nil
			}
			return false, rerr
		}

		if n == 0 {
			return false, io.ErrNoProgress
		}
	}

	return false, nil
}

// shift moves n bytes from the front of the lookahead into the back of the
// dictionary, evicting the oldest dictionary bytes once its capacity is
// exceeded. Precondition: n <= look.size().
func (w *window) shift(n uint64) {
	c := w.dict.capacity()
	w.dict.hd += n
	if n > c {
		w.dict.tl += n - c
	}
	w.look.tl += n
}
