// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzpi

import (
	"fmt"
	"io"
)

// decoder replays a compressed stream of groups, each a control byte
// followed by up to eight literal/back-reference tokens, into a W-byte ring
// used both to resolve back-references and to supply the self-overlap
// source for run-length expansion.
//
// cursor is a uint8 specifically because W == 256: incrementing or
// subtracting from a uint8 already wraps modulo 256, giving free modular
// ring arithmetic. If W ever changes this type must change with it.
type decoder struct {
	r      io.Reader
	w      io.Writer
	ring   [W]byte
	cursor uint8
	c      byte
	n      int // tokens consumed so far in the current group, 0..7
}

// run decodes the entire stream, writing decoded bytes to d.w, stopping
// cleanly when the input ends at a group boundary or between the tokens of a
// short final group.
func (d *decoder) run() error {
	for {
		first := d.n == 0

		if first {
			c, eof, err := d.readByte()
			if err != nil {
				return err
			}
			if eof {
				return nil
			}
			d.c = c
		}

		bit := d.c & (1 << uint(7-d.n))
		d.n++
		if d.n == 8 {
			d.n = 0
		}

		if bit != 0 {
			eof, err := d.decodeBackRef(first)
			if err != nil {
				return err
			}
			if eof {
				return nil
			}
			continue
		}

		v, eof, err := d.readByte()
		if err != nil {
			return err
		}
		if eof {
			if first {
				// The encoder never writes a control byte with no payload
				// at all: this is EOF between a control byte and its first
				// token, which §4.7/§7 name an explicit decoding error.
				return ErrTruncatedStream
			}
			// A control byte's unused trailing bits are always clear, so a
			// short final group looks exactly like a run of zero-length
			// literal slots in its unused tail. EOF right here, before a
			// later token in the group, is the legitimate end of such a
			// group, not a truncated one.
			return nil
		}
		if err := d.emit(v); err != nil {
			return err
		}
	}
}

// decodeBackRef reads the offset and length-minus-one payload bytes (in
// that order, matching the wire format in §6) and replays the run. first
// marks whether this token is the first of the group whose control byte was
// just read: EOF there is always truncation, never a legal group end (see
// run). eof is true only when the stream ended before the offset byte of a
// non-first token, meaning that slot was never actually used by the
// encoder.
func (d *decoder) decodeBackRef(first bool) (eof bool, err error) {
	offsetByte, eof, err := d.readByte()
	if err != nil {
		return false, err
	}
	if eof {
		if first {
			return false, ErrTruncatedStream
		}
		return true, nil
	}

	lengthByte, lenEOF, err := d.readByte()
	if err != nil {
		return false, err
	}
	if lenEOF {
		return false, ErrTruncatedStream
	}

	return false, d.copyBackRef(int(offsetByte)+1, int(lengthByte)+1)
}

// copyBackRef copies length bytes starting dist positions behind the
// current cursor into the output and the ring, one byte at a time: a
// back-reference whose length exceeds its distance reads bytes it has just
// written, which is exactly the run-length self-overlap the format permits.
func (d *decoder) copyBackRef(dist, length int) error {
	pos := uint8(int(d.cursor) - dist)
	for i := 0; i < length; i++ {
		b := d.ring[pos]
		pos++
		if err := d.emit(b); err != nil {
			return err
		}
	}
	return nil
}

// emit writes b to the output and records it in the ring at the current
// cursor, then advances the cursor.
func (d *decoder) emit(b byte) error {
	if err := d.writeByte(b); err != nil {
		return err
	}
	d.ring[d.cursor] = b
	d.cursor++
	return nil
}

func (d *decoder) writeByte(b byte) error {
	var err error
	if bw, ok := d.w.(io.ByteWriter); ok {
		err = bw.WriteByte(b)
	} else {
		_, err = d.w.Write([]byte{b})
	}
	if err != nil {
		return fmt.Errorf("lzpi: write: %w", err)
	}
	return nil
}

// readByte reads one byte from the input. A clean EOF (zero bytes read,
// io.EOF) is reported via the eof return rather than an error, so callers
// can distinguish a legal stream end from a truncated one.
func (d *decoder) readByte() (b byte, eof bool, err error) {
	if br, ok := d.r.(io.ByteReader); ok {
		v, rerr := br.ReadByte()
		if rerr != nil {
			if rerr == io.EOF {
				return 0, true, nil
			}
			return 0, false, fmt.Errorf("lzpi: read: %w", rerr)
		}
		return v, false, nil
	}

	var buf [1]byte
	n, rerr := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], false, nil
	}
	if rerr == io.EOF || rerr == nil {
		return 0, true, nil
	}
	return 0, false, fmt.Errorf("lzpi: read: %w", rerr)
}
