// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import (
	"fmt"
	"io"
)

// encoder buffers up to eight tokens and serializes them under one control
// byte: a clear bit marks a literal, a set bit a back-reference. Bit 7 of
// the control byte belongs to the first token of the group, bit 0 to the
// eighth (see DESIGN.md for why the bit order is pinned this way rather
// than following the rotating-mask construction literally).
type encoder struct {
	w      io.Writer
	n      int
	c      byte
	tokens [8]token
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{w: w}
}

// put appends tok to the current group, flushing a full group first.
func (e *encoder) put(tok token) error {
	if e.n == 8 {
		if err := e.flush(); err != nil {
			return err
		}
	}

	if tok.kind == tokenBackRef {
		e.c |= 1 << uint(7-e.n)
	}
	e.tokens[e.n] = tok
	e.n++

	return nil
}

// flush writes the accumulated group (control byte then payloads) and
// resets the group. A no-op when no tokens are pending.
func (e *encoder) flush() error {
	if e.n == 0 {
		return nil
	}

	if err := e.writeByte(e.c); err != nil {
		return err
	}

	for i := 0; i < e.n; i++ {
		t := e.tokens[i]
		if t.kind == tokenLiteral {
			if err := e.writeByte(t.v); err != nil {
				return err
			}
			continue
		}
		if err := e.writeByte(t.offset); err != nil {
			return err
		}
		if err := e.writeByte(t.length); err != nil {
			return err
		}
	}

	e.n = 0
	e.c = 0
	return nil
}

func (e *encoder) writeByte(b byte) error {
	var err error
	if bw, ok := e.w.(io.ByteWriter); ok {
		err = bw.WriteByte(b)
	} else {
		_, err = e.w.Write([]byte{b})
	}
	if err != nil {
		return fmt.Errorf("lzpi: write: %w", err)
	}
	return nil
}
