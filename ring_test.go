package lzpi

import "testing"

func TestRingSizeAndCapacity(t *testing.T) {
	r := ring{hd: 10, tl: 4}
	if got := r.size(); got != 6 {
		t.Fatalf("size: got %d want 6", got)
	}
	if got := r.capacity(); got != W-6 {
		t.Fatalf("capacity: got %d want %d", got, W-6)
	}
}

func TestRingRunStopsAtBufferWrap(t *testing.T) {
	r := ring{hd: bufSize - 5, tl: bufSize - 5}
	if got := r.run(); got != 5 {
		t.Fatalf("run: got %d want 5", got)
	}
}

func TestMaskWraps(t *testing.T) {
	if got := mask(bufSize); got != 0 {
		t.Fatalf("mask(bufSize): got %d want 0", got)
	}
	if got := mask(bufSize + 3); got != 3 {
		t.Fatalf("mask(bufSize+3): got %d want 3", got)
	}
}
