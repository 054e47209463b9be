package fsv

import (
	"io"
	"strings"
	"unsafe"
)

// View is a read-only, filtered view over a borrowed byte buffer.
//
// The buffer is never copied or written. It ends at the first NUL byte or at
// the end of the slice, whichever comes first. A View must not outlive the
// buffer it was built from, and the owner must not modify the buffer while a
// View is being read.
//
// The zero value is an empty view with the accept-all filter.
type View struct {
	buf    []byte
	length int
	filter Filter
}

// Option configures a View at construction time.
type Option func(*View)

// WithPredicate sets a byte predicate as the view's filter.
func WithPredicate(p Predicate) Option {
	return func(v *View) {
		if p != nil {
			v.filter = p
		}
	}
}

// WithFilter sets a position-aware filter. A nil filter keeps AcceptAll.
func WithFilter(f Filter) Option {
	return func(v *View) {
		if !isNil(f) {
			v.filter = f
		}
	}
}

// New returns a view over the bytes of s. The string is not copied.
func New(s string, opts ...Option) View {
	var buf []byte
	if len(s) == 0 {
		buf = []byte{}
	} else {
		buf = unsafe.Slice(unsafe.StringData(s), len(s))
	}
	return newView(buf, opts)
}

// FromBytes returns a view borrowing b. Changes made to b by its owner are
// visible through the view. A nil slice yields the empty view.
func FromBytes(b []byte, opts ...Option) View {
	return newView(b, opts)
}

func newView(buf []byte, opts []Option) View {
	v := View{
		buf:    buf,
		length: terminator(buf),
		filter: AcceptAll,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// terminator returns the offset of the first NUL in buf, or len(buf).
func terminator(buf []byte) int {
	for i, c := range buf {
		if c == 0 {
			return i
		}
	}
	return len(buf)
}

func (v View) keep() Filter {
	if isNil(v.filter) {
		return AcceptAll
	}
	return v.filter
}

// Size returns the number of bytes accepted by the filter. It rescans the
// buffer on every call.
func (v View) Size() int {
	if v.buf == nil {
		return 0
	}
	f := v.keep()
	n := 0
	for i := 0; i < len(v.buf) && v.buf[i] != 0; i++ {
		if f.Keep(i, v.buf[i]) {
			n++
		}
	}
	return n
}

// Empty reports whether no byte passes the filter.
func (v View) Empty() bool {
	return v.Size() == 0
}

// At returns the i-th accepted byte.
func (v View) At(i int) (byte, error) {
	if i < 0 || i >= v.Size() {
		return 0, &RangeError{Op: "At", Index: i}
	}
	f := v.keep()
	n := 0
	for pos := 0; pos < len(v.buf) && v.buf[pos] != 0; pos++ {
		if !f.Keep(pos, v.buf[pos]) {
			continue
		}
		if n == i {
			return v.buf[pos], nil
		}
		n++
	}
	// the filter changed its mind between the two scans
	return 0, &RangeError{Op: "At", Index: i}
}

// Index is like At but panics with a *RangeError when i is out of range.
func (v View) Index(i int) byte {
	c, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Filter returns the view's filter.
func (v View) Filter() Filter {
	return v.keep()
}

// Data returns the borrowed buffer as-is, without filtering. It is nil for
// the empty view. Callers must treat it as read-only.
func (v View) Data() []byte {
	return v.buf
}

// RawLen is the unfiltered length of the buffer recorded at construction.
func (v View) RawLen() int {
	return v.length
}

// Bytes returns a copy of the accepted bytes.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return []byte{}
	}
	f := v.keep()
	out := make([]byte, 0, v.length)
	for i := 0; i < len(v.buf) && v.buf[i] != 0; i++ {
		if f.Keep(i, v.buf[i]) {
			out = append(out, v.buf[i])
		}
	}
	return out
}

// String materializes the view into a newly allocated string.
func (v View) String() string {
	return string(v.Bytes())
}

// WriteTo writes the materialized text to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Bytes())
	return int64(n), err
}

// Equal reports whether both views produce the same bytes.
func (v View) Equal(o View) bool {
	return v.String() == o.String()
}

// Compare orders views by their materialized text, byte-wise.
func (v View) Compare(o View) int {
	return strings.Compare(v.String(), o.String())
}

// Less reports whether v sorts before o.
func (v View) Less(o View) bool {
	return v.Compare(o) < 0
}

// Equal reports whether a and b produce the same bytes.
func Equal(a, b View) bool { return a.Equal(b) }

// Compare is the three-way comparison of a and b.
func Compare(a, b View) int { return a.Compare(b) }

// Assign makes v a shallow copy of o.
func (v *View) Assign(o View) {
	*v = o
}

// MoveFrom transfers src into v and resets src to the empty view. Moving a
// view into itself leaves it unchanged.
func (v *View) MoveFrom(src *View) {
	if v == src {
		return
	}
	*v = *src
	src.Reset()
}

// Take returns the current view and resets v.
func (v *View) Take() View {
	out := *v
	v.Reset()
	return out
}

// Reset puts v back into the zero state.
func (v *View) Reset() {
	*v = View{filter: AcceptAll}
}
