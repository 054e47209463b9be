package fsv

import "iter"

// Iterator is a bidirectional cursor over the accepted bytes of a view.
// Next and Prev move one logical position and never clamp; bounds are
// checked when the value is read.
type Iterator struct {
	view *View
	idx  int
}

// Value returns the byte under the cursor.
func (it Iterator) Value() (byte, error) {
	if it.view == nil {
		return 0, &RangeError{Op: "Value", Index: it.idx}
	}
	return it.view.At(it.idx)
}

// MustValue is like Value but panics with a *RangeError.
func (it Iterator) MustValue() byte {
	c, err := it.Value()
	if err != nil {
		panic(err)
	}
	return c
}

// Index returns the logical position.
func (it Iterator) Index() int { return it.idx }

// Next advances the cursor and returns it.
func (it *Iterator) Next() *Iterator {
	it.idx++
	return it
}

// Prev moves the cursor back and returns it.
func (it *Iterator) Prev() *Iterator {
	it.idx--
	return it
}

// Equal reports whether both cursors point into the same view at the same
// position.
func (it Iterator) Equal(o Iterator) bool {
	return it.idx == o.idx && it.view == o.view
}

// ReverseIterator walks a view from its last accepted byte to its first.
// It wraps a forward cursor that sits one past the current element.
type ReverseIterator struct {
	base Iterator
}

// Value returns the byte before the underlying forward position.
func (it ReverseIterator) Value() (byte, error) {
	prev := it.base
	prev.Prev()
	return prev.Value()
}

// MustValue is like Value but panics with a *RangeError.
func (it ReverseIterator) MustValue() byte {
	c, err := it.Value()
	if err != nil {
		panic(err)
	}
	return c
}

// Base returns the underlying forward cursor.
func (it ReverseIterator) Base() Iterator { return it.base }

// Next moves towards the front of the view.
func (it *ReverseIterator) Next() *ReverseIterator {
	it.base.Prev()
	return it
}

// Prev moves towards the back of the view.
func (it *ReverseIterator) Prev() *ReverseIterator {
	it.base.Next()
	return it
}

// Equal reports whether both reverse cursors share a base position.
func (it ReverseIterator) Equal(o ReverseIterator) bool {
	return it.base.Equal(o.base)
}

// Begin returns a cursor at logical position 0.
func (v *View) Begin() Iterator { return Iterator{view: v, idx: 0} }

// End returns a cursor one past the last accepted byte.
func (v *View) End() Iterator { return Iterator{view: v, idx: v.Size()} }

// CBegin is Begin. Iterators never write through to the buffer.
func (v *View) CBegin() Iterator { return v.Begin() }

// CEnd is End.
func (v *View) CEnd() Iterator { return v.End() }

// RBegin returns a reverse cursor at the last accepted byte.
func (v *View) RBegin() ReverseIterator { return ReverseIterator{base: v.End()} }

// REnd returns a reverse cursor one before the first accepted byte.
func (v *View) REnd() ReverseIterator { return ReverseIterator{base: v.Begin()} }

// CRBegin is RBegin.
func (v *View) CRBegin() ReverseIterator { return v.RBegin() }

// CREnd is REnd.
func (v *View) CREnd() ReverseIterator { return v.REnd() }

// All yields each accepted byte with its logical index, front to back.
func (v *View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
			c, err := it.Value()
			if err != nil || !yield(it.Index(), c) {
				return
			}
		}
	}
}

// Backward yields each accepted byte with its logical index, back to front.
func (v *View) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for it, end := v.RBegin(), v.REnd(); !it.Equal(end); it.Next() {
			c, err := it.Value()
			if err != nil || !yield(it.base.Index()-1, c) {
				return
			}
		}
	}
}
