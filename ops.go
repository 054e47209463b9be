package fsv

import "strings"

// Compose returns a view over the same buffer that keeps a byte only if the
// view's own filter and then every filter in fs keep it, stopping at the
// first rejection. A view with a nil buffer is returned unchanged.
func Compose(v View, fs ...Filter) View {
	if v.buf == nil {
		return v
	}
	chain := make([]Filter, 0, len(fs)+1)
	chain = append(chain, v.keep())
	chain = append(chain, fs...)
	return View{buf: v.buf, length: v.length, filter: And(chain...)}
}

// positions returns the raw offset of every accepted byte in order, and the
// offset of the terminator.
func positions(v View) ([]int, int) {
	if v.buf == nil {
		return nil, 0
	}
	f := v.keep()
	var offs []int
	i := 0
	for ; i < len(v.buf) && v.buf[i] != 0; i++ {
		if f.Keep(i, v.buf[i]) {
			offs = append(offs, i)
		}
	}
	return offs, i
}

// segment builds a view restricted to logical indices [from, to) of v, given
// the offsets produced by positions.
func segment(v View, offs []int, end, from, to int) View {
	lo, hi := end, end
	if from < len(offs) {
		lo = offs[from]
	}
	if to < len(offs) {
		hi = offs[to]
	}
	return View{buf: v.buf, length: v.length, filter: inRange(v.keep(), lo, hi)}
}

// Split cuts v at every non-overlapping occurrence of delim's text, scanning
// left to right. Leading, trailing and adjacent delimiters produce empty
// segments. An empty delimiter returns v as the single segment.
//
// Each segment shares v's buffer; its filter is v's filter narrowed to the
// raw span the segment covers.
func Split(v View, delim View) []View {
	tok := delim.String()
	if len(tok) == 0 {
		return []View{v}
	}
	text := v.String()
	offs, end := positions(v)

	var out []View
	start := 0
	for {
		i := strings.Index(text[start:], tok)
		if i < 0 {
			break
		}
		out = append(out, segment(v, offs, end, start, start+i))
		start += i + len(tok)
	}
	out = append(out, segment(v, offs, end, start, len(offs)))
	logger.Debugf("split %d bytes on %q into %d segments", len(text), tok, len(out))
	return out
}

// Substr restricts v to the logical range [start, start+length). A length
// of zero or less extends the range to the end of v. Bytes outside the range
// are dropped; out-of-range arguments are not an error.
func Substr(v View, start, length int) View {
	size := v.Size()
	if size == 0 {
		return New("")
	}
	from, to := max(start, 0), size
	switch {
	case start >= size:
		from = size
	case length <= 0:
	case start < 0:
		// opposite signs, the sum cannot wrap
		to = max(min(start+length, size), 0)
	case length < size-start:
		to = start + length
	}
	if from > to {
		from = to
	}
	offs, end := positions(v)
	logger.Debugf("substr [%d, %d) of %d accepted bytes", from, to, size)
	return segment(v, offs, end, from, to)
}
