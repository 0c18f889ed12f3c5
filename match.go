// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

// match is the result of a longest-match search: offset is the unmasked
// dictionary start position the match begins at, length is the run length
// (which may extend past the dictionary into the lookahead via overlap).
type match struct {
	offset uint64
	length uint64
}

// search finds the longest prefix of the lookahead occurring as a substring
// of the dictionary, permitting the match to extend into the lookahead
// itself (run-length-style self-overlap). It is a two-cursor KMP scan: i
// walks the lookahead, j walks the dictionary (and, once j passes
// dictionary.hd, the lookahead too, which is what allows overlap).
func (w *window) search(t *failureTable) match {
	var best match

	i := w.look.tl
	j := w.dict.tl
	dictSize := w.dict.size()

	for j != w.look.hd {
		o := j - w.dict.tl - (i - w.look.tl)
		if o == dictSize {
			break
		}

		if w.at(i) == w.at(j) {
			i++
			j++
			if i == w.look.hd {
				return match{offset: o, length: i - w.look.tl}
			}
			continue
		}

		if i == w.look.tl {
			j++
			continue
		}

		if partial := i - w.look.tl; partial > best.length {
			best = match{offset: o, length: partial}
		}
		i = w.look.tl + uint64(t[i-w.look.tl-1])
	}

	return best
}

// tokenKind distinguishes a literal byte from a back-reference run.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenBackRef
)

// token is the unit handed from the match policy to the encoder.
type token struct {
	kind   tokenKind
	v      byte // literal value, valid when kind == tokenLiteral
	offset byte // back-distance minus one, valid when kind == tokenBackRef
	length byte // run length minus one, valid when kind == tokenBackRef
}

// next applies the match policy to the current lookahead position: run the
// longest-match search, decide whether the result is profitable, emit the
// resulting token, and advance the window. ok is false when the lookahead
// is empty.
func (w *window) next(t *failureTable) (tok token, ok bool) {
	if w.look.size() == 0 {
		return token{}, false
	}

	m := w.search(t)
	if w.literalPreferred(m) {
		v := w.at(w.look.tl)
		w.shift(1)
		return token{kind: tokenLiteral, v: v}, true
	}

	offset := w.dict.size() - m.offset - 1
	length := m.length - 1
	w.shift(m.length)
	return token{kind: tokenBackRef, offset: byte(offset), length: byte(length)}, true
}

// literalPreferred implements the tie-break that suppresses unprofitable
// 2-byte matches likely to be superseded by a longer match one byte later.
// The check only applies away from the lookahead's tail, where the
// surrounding bytes needed to judge profitability actually exist; at the
// tail a 2-byte match is always accepted.
func (w *window) literalPreferred(m match) bool {
	if m.length < 2 {
		return true
	}
	if m.length != 2 {
		return false
	}
	if w.look.size() <= 3 {
		return false
	}

	tl := w.look.tl
	if w.at(tl+2) != w.at(tl) {
		return false
	}

	return w.at(tl+3) == w.at(tl) || w.at(tl+3) == w.at(w.dict.tl+m.length)
}
