package fsv

import (
	"errors"
	"testing"
)

func TestIteratorBegin(t *testing.T) {
	v := New("samoyed", WithFilter(Not(AnyOf("aeiou"))))
	it := v.Begin()
	if c := it.MustValue(); c != 's' {
		t.Fatalf("*Begin() = %q, want 's'", c)
	}
}

func TestIteratorForwardAndBack(t *testing.T) {
	v := New("bunny")
	it := v.Begin()
	for _, want := range []byte("bunny") {
		if c := it.MustValue(); c != want {
			t.Fatalf("value = %q, want %q", c, want)
		}
		it.Next()
	}
	if !it.Equal(v.End()) {
		t.Fatalf("iterator at %d should equal End()", it.Index())
	}
	for i := len("bunny") - 1; i >= 0; i-- {
		it.Prev()
		if c := it.MustValue(); c != "bunny"[i] {
			t.Fatalf("value = %q, want %q", c, "bunny"[i])
		}
	}
	if !it.Equal(v.Begin()) {
		t.Fatal("iterator should be back at Begin()")
	}
}

func TestIteratorWithPredicate(t *testing.T) {
	v := New("Shawty Destroyer of all time ___", WithPredicate(IsUpper))
	it := v.Begin()
	if it.MustValue() != 'S' || it.Next().MustValue() != 'D' {
		t.Fatal("expected S then D")
	}
	if !it.Next().Equal(v.End()) {
		t.Fatal("expected End() after two steps")
	}
	if !it.Prev().Prev().Equal(v.Begin()) {
		t.Fatal("expected Begin() after stepping back twice")
	}
}

func TestIteratorDereferenceOutOfRange(t *testing.T) {
	v := New("ab")
	end := v.End()
	if _, err := end.Value(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("End().Value() error = %v, want ErrOutOfRange", err)
	}
	before := v.Begin()
	before.Prev()
	if _, err := before.Value(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Value() before Begin error = %v, want ErrOutOfRange", err)
	}
	var detached Iterator
	if _, err := detached.Value(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("zero Iterator Value() error = %v", err)
	}
}

func TestIteratorIdentity(t *testing.T) {
	a := New("same")
	b := a
	if a.Begin().Equal(b.Begin()) {
		t.Fatal("iterators over different views must not compare equal")
	}
	if !a.Begin().Equal(a.CBegin()) || !a.End().Equal(a.CEnd()) {
		t.Fatal("const and non-const iterators over one view should agree")
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	v := New("tohsaka")
	it1, it2 := v.Begin(), v.Begin()
	it1.Next()
	it1.Next()
	if it2.MustValue() != 't' || it1.MustValue() != 'h' {
		t.Fatal("advancing one iterator must not move another")
	}
	if v.String() != "tohsaka" {
		t.Fatal("iteration must not change the view")
	}
}

func TestIteratorEmpty(t *testing.T) {
	var zero View
	never := New("the king comes back", WithPredicate(func(byte) bool { return false }))
	for _, v := range []*View{&zero, &never} {
		if !v.Begin().Equal(v.End()) {
			t.Fatal("Begin() should equal End() on an empty view")
		}
		if !v.RBegin().Equal(v.REnd()) {
			t.Fatal("RBegin() should equal REnd() on an empty view")
		}
		for range v.All() {
			t.Fatal("All() yielded on an empty view")
		}
	}
}

func TestReverseIterator(t *testing.T) {
	v := New("Rin Tohsaka", WithFilter(Not(AnyOf("io"))))
	var got []byte
	for it, end := v.RBegin(), v.REnd(); !it.Equal(end); it.Next() {
		got = append(got, it.MustValue())
	}
	if string(got) != "akashT nR" {
		t.Fatalf("reverse walk = %q, want %q", got, "akashT nR")
	}
	if !v.CRBegin().Equal(v.RBegin()) || !v.CREnd().Equal(v.REnd()) {
		t.Fatal("const reverse iterators should agree")
	}
	if !v.RBegin().Base().Equal(v.End()) {
		t.Fatal("RBegin().Base() should be End()")
	}
}

func TestRangeOverView(t *testing.T) {
	v := New("a1b2c3", WithPredicate(IsDigit))

	var fwd []byte
	for i, c := range v.All() {
		if i != len(fwd) {
			t.Fatalf("index %d, want %d", i, len(fwd))
		}
		fwd = append(fwd, c)
	}
	if string(fwd) != "123" {
		t.Fatalf("All() = %q", fwd)
	}

	var back []byte
	var idx []int
	for i, c := range v.Backward() {
		back = append(back, c)
		idx = append(idx, i)
	}
	if string(back) != "321" || idx[0] != 2 || idx[2] != 0 {
		t.Fatalf("Backward() = %q at %v", back, idx)
	}

	for _, c := range v.All() {
		if c != '1' {
			t.Fatalf("first value %q", c)
		}
		break
	}
}
