package lzpi

import (
	"bytes"
	"testing"
)

func TestEncoderControlByteBitOrder(t *testing.T) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)

	// first token is a back-reference, the rest literals: bit 7 must be set,
	// all others clear.
	if err := enc.put(token{kind: tokenBackRef, offset: 0, length: 0}); err != nil {
		t.Fatalf("put: %v", err)
	}
	for i := 0; i < 6; i++ {
		if err := enc.put(token{kind: tokenLiteral, v: byte(i)}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	if err := enc.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := buf.Bytes()
	if len(got) == 0 {
		t.Fatal("no output written")
	}
	if got[0] != 0x80 {
		t.Fatalf("control byte: got %08b want %08b", got[0], byte(0x80))
	}
}

func TestEncoderEighthTokenSetsBitZero(t *testing.T) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)

	for i := 0; i < 7; i++ {
		if err := enc.put(token{kind: tokenLiteral, v: byte(i)}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	if err := enc.put(token{kind: tokenBackRef, offset: 1, length: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := enc.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := buf.Bytes()
	if got[0] != 0x01 {
		t.Fatalf("control byte: got %08b want %08b", got[0], byte(0x01))
	}
}

func TestEncoderFlushIsNoOpWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)
	if err := enc.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %d bytes", buf.Len())
	}
}

func TestEncoderBackRefPayloadOrderIsOffsetThenLength(t *testing.T) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)
	if err := enc.put(token{kind: tokenBackRef, offset: 7, length: 3}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := enc.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := []byte{0x80, 7, 3}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x want % x", buf.Bytes(), want)
	}
}

func TestEncoderAutoFlushesFullGroup(t *testing.T) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)
	for i := 0; i < 9; i++ {
		if err := enc.put(token{kind: tokenLiteral, v: byte(i)}); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}
	if err := enc.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	// two groups: 8 tokens + control byte, then 1 token + control byte.
	if got := buf.Len(); got != 9+2 {
		t.Fatalf("len: got %d want %d", got, 9+2)
	}
}
