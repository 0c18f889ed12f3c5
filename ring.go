// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

// W is the fixed window capacity: the dictionary and the lookahead each hold
// at most W bytes. W must stay a compile-time power of two; the decoder's
// out_ring cursor is a uint8 specifically because W == 256 (see decoder.go).
const W = 256

// bufSize is the physical size of the buffer shared by the dictionary and
// lookahead rings. Two W-sized rings share one 2W buffer so a single virtual
// index space, reduced mod bufSize, lets the searcher compare bytes across
// both rings without distinguishing which ring a cursor belongs to.
const bufSize = 2 * W

// ring is a pair of monotonically non-decreasing virtual cursors over a
// shared bufSize buffer. size is hd-tl; capacity is W-size.
type ring struct {
	hd uint64
	tl uint64
}

// size returns the number of live bytes held by the ring.
func (r ring) size() uint64 { return r.hd - r.tl }

// capacity returns the free capacity remaining before size reaches W.
func (r ring) capacity() uint64 { return W - r.size() }

// mask maps a virtual index into its physical position in the shared
// bufSize buffer.
func mask(v uint64) int { return int(v % bufSize) }

// run returns the number of contiguous bytes writable at the ring's
// physical head before the shared buffer wraps.
func (r ring) run() uint64 { return bufSize - uint64(mask(r.hd)) }
