package lzpi

import "testing"

func newTestWindow(dict, look string) *window {
	w := &window{}
	copy(w.buf[:], dict+look)
	w.dict = ring{hd: uint64(len(dict)), tl: 0}
	w.look = ring{hd: uint64(len(dict) + len(look)), tl: uint64(len(dict))}
	return w
}

func TestSearchFindsDictionaryMatch(t *testing.T) {
	w := newTestWindow("xxabcxx", "abc")
	var ft failureTable
	w.buildFailureTable(&ft, w.look.size())

	m := w.search(&ft)
	if m.length != 3 {
		t.Fatalf("length: got %d want 3", m.length)
	}
	if got := w.at(w.dict.tl + m.offset); got != 'a' {
		t.Fatalf("match does not start on 'a': got %c", got)
	}
}

func TestSearchNoMatchReturnsZero(t *testing.T) {
	w := newTestWindow("xxxxxxx", "qqq")
	var ft failureTable
	w.buildFailureTable(&ft, w.look.size())

	m := w.search(&ft)
	if m.length != 0 {
		t.Fatalf("length: got %d want 0", m.length)
	}
}

func TestSearchSelfOverlapRunLength(t *testing.T) {
	w := newTestWindow("xxxa", "aaaaaa")
	var ft failureTable
	w.buildFailureTable(&ft, w.look.size())

	m := w.search(&ft)
	if m.length != 6 {
		t.Fatalf("length: got %d want 6 (self-overlapping run)", m.length)
	}
}

func TestNextEmitsLiteralWhenNoProfitableMatch(t *testing.T) {
	w := newTestWindow("", "z")
	var ft failureTable
	w.buildFailureTable(&ft, w.look.size())

	tok, ok := w.next(&ft)
	if !ok {
		t.Fatal("expected a token")
	}
	if tok.kind != tokenLiteral || tok.v != 'z' {
		t.Fatalf("got %+v, want literal 'z'", tok)
	}
}

func TestNextEmitsBackRefForLongMatch(t *testing.T) {
	w := newTestWindow("abcdef", "abcdef")
	var ft failureTable
	w.buildFailureTable(&ft, w.look.size())

	tok, ok := w.next(&ft)
	if !ok {
		t.Fatal("expected a token")
	}
	if tok.kind != tokenBackRef {
		t.Fatalf("got %+v, want a back-reference", tok)
	}
	if int(tok.length)+1 != 6 {
		t.Fatalf("length: got %d want 6", int(tok.length)+1)
	}
}

func TestNextReturnsFalseOnEmptyLookahead(t *testing.T) {
	w := newTestWindow("abc", "")
	var ft failureTable
	if _, ok := w.next(&ft); ok {
		t.Fatal("expected ok=false on empty lookahead")
	}
}
