package stringintern

import "testing"

func TestStrInternsSameContentToEqualHandles(t *testing.T) {
	e := NewEngine()
	a := e.Str("hello")
	b := e.Str("hello")

	if !a.Equal(b) {
		t.Fatalf("expected handles for identical content to be equal")
	}
	if a.Text() != "hello" {
		t.Fatalf("got text %q, want %q", a.Text(), "hello")
	}
}

func TestStrDistinguishesDifferentContent(t *testing.T) {
	e := NewEngine()
	a := e.Str("hello")
	b := e.Str("goodbye")

	if a.Equal(b) {
		t.Fatalf("expected handles for different content to be unequal")
	}
}

func TestExistsTracksLiveness(t *testing.T) {
	e := NewEngine()
	if e.Exists("hello") {
		t.Fatalf("expected hello to not exist before interning")
	}

	h := e.Str("hello")
	if !e.Exists("hello") {
		t.Fatalf("expected hello to exist after interning")
	}

	h.Release()
	if e.Exists("hello") {
		t.Fatalf("expected hello to be erased after its only reference is released")
	}
}

func TestReleaseOnlyErasesAtZeroReferences(t *testing.T) {
	e := NewEngine()
	a := e.Str("hello")
	b := e.Str("hello")

	a.Release()
	if !e.Exists("hello") {
		t.Fatalf("expected hello to survive while b still references it")
	}

	b.Release()
	if e.Exists("hello") {
		t.Fatalf("expected hello to be erased once all references are released")
	}
}

func TestCloneAddsAReference(t *testing.T) {
	e := NewEngine()
	a := e.Str("hello")
	b := a.Clone()

	a.Release()
	if !e.Exists("hello") {
		t.Fatalf("expected hello to survive release of a, since b still holds a clone")
	}

	b.Release()
	if e.Exists("hello") {
		t.Fatalf("expected hello to be erased once the clone is also released")
	}
}

func TestIndependentEnginesDoNotShareRecords(t *testing.T) {
	e1 := NewEngine()
	e2 := NewEngine()

	a := e1.Str("hello")
	b := e2.Str("hello")

	if a.Equal(b) {
		t.Fatalf("expected handles from independent engines to never compare equal")
	}
	if !e1.Exists("hello") || !e2.Exists("hello") {
		t.Fatalf("expected each engine to independently intern its own record")
	}
}
