// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import "sync"

// compressState bundles the dual-ring window together with its KMP failure
// table, the two pieces of per-call scratch state Compress needs.
type compressState struct {
	win  window
	fail failureTable
}

// compressStatePool pools compressState values so Compress doesn't allocate
// the ~512-byte window buffer and ~256-entry failure table on every call,
// the same acquire/reset/release convention this package used for its
// sliding-window dictionary before the codec was generalized to the
// dual-ring design.
var compressStatePool = sync.Pool{
	New: func() any {
		return &compressState{}
	},
}

func acquireCompressState() *compressState {
	cs := compressStatePool.Get().(*compressState)
	*cs = compressState{}
	return cs
}

func releaseCompressState(cs *compressState) {
	if cs == nil {
		return
	}
	compressStatePool.Put(cs)
}

// decoderPool pools decoder values (the ~256-byte output ring plus its
// cursor) the same way.
var decoderPool = sync.Pool{
	New: func() any {
		return &decoder{}
	},
}

func acquireDecoder() *decoder {
	d := decoderPool.Get().(*decoder)
	*d = decoder{}
	return d
}

func releaseDecoder(d *decoder) {
	if d == nil {
		return
	}
	d.r = nil
	d.w = nil
	decoderPool.Put(d)
}
