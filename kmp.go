// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

// failureTable is the Knuth-Morris-Pratt failure function for the current
// lookahead: t[k] is the length of the longest proper prefix of the first
// k+1 lookahead bytes that is also a suffix of them. It is sized W because
// the lookahead can never exceed W bytes.
type failureTable [W]int

// buildFailureTable computes the failure table for the first m bytes of the lookahead,
// starting at w.look.tl. Left untouched (and unused by search) when m < 2.
func (w *window) buildFailureTable(t *failureTable, m uint64) {
	if m < 2 {
		return
	}

	tl := w.look.tl
	t[0] = 0
	k := 0

	for i := uint64(1); i < m; i++ {
		for k > 0 && w.at(tl+i) != w.at(tl+uint64(k)) {
			k = t[k-1]
		}
		if w.at(tl+i) == w.at(tl+uint64(k)) {
			k++
		}
		t[i] = k
	}
}
