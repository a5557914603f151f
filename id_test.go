package layout

import (
	"hash/fnv"
	"testing"
)

func TestDeriveIDLayout(t *testing.T) {
	// parent, label hash and occurrence are hashed as little-endian words.
	buf := []byte{
		0x01, 0x02, 0, 0, 0, 0, 0, 0,
		0xff, 0, 0, 0, 0, 0, 0, 0x80,
		0x03, 0, 0, 0, 0, 0, 0, 0,
	}
	h := fnv.New64a()
	h.Write(buf)
	want := ID(h.Sum64())

	if got := deriveID(0x0201, 0x80000000000000ff, 3); got != want {
		t.Errorf("deriveID = %#x, want %#x", got, want)
	}
}

func TestKeyScopeOccurrences(t *testing.T) {
	var s keyScope
	s.reset(7)
	a0, b0, a1 := s.next("a"), s.next("b"), s.next("a")
	if a0 == a1 || a0 == b0 || a1 == b0 {
		t.Fatalf("keys must differ: a=%#x b=%#x a#1=%#x", a0, b0, a1)
	}

	// Dropping b does not shift the keys of the a siblings.
	s.reset(7)
	if s.next("a") != a0 || s.next("a") != a1 {
		t.Error("keys changed when a differently labelled sibling disappeared")
	}

	s.reset(8)
	if s.next("a") == a0 {
		t.Error("keys under different parents collide")
	}
}
