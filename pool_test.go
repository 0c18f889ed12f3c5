package lzpi

import (
	"bytes"
	"testing"
)

func TestAcquireCompressStateIsZeroed(t *testing.T) {
	cs := acquireCompressState()
	cs.win.dict.hd = 42
	cs.fail[0] = 7
	releaseCompressState(cs)

	cs2 := acquireCompressState()
	defer releaseCompressState(cs2)
	if cs2.win.dict.hd != 0 {
		t.Fatalf("dict.hd leaked across acquire: got %d", cs2.win.dict.hd)
	}
	if cs2.fail[0] != 0 {
		t.Fatalf("failure table leaked across acquire: got %d", cs2.fail[0])
	}
}

func TestAcquireDecoderIsZeroedAndDetachesIO(t *testing.T) {
	d := acquireDecoder()
	d.cursor = 99
	d.r = &bytes.Buffer{}
	d.w = &bytes.Buffer{}
	releaseDecoder(d)
	if d.r != nil || d.w != nil {
		t.Fatal("releaseDecoder left the reader or writer attached")
	}

	d2 := acquireDecoder()
	defer releaseDecoder(d2)
	if d2.cursor != 0 {
		t.Fatalf("cursor leaked across acquire: got %d", d2.cursor)
	}
}

func TestReleaseDecoderNilSafe(t *testing.T) {
	releaseDecoder(nil)
	releaseCompressState(nil)
}
