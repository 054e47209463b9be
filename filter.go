package fsv

// Filter decides whether the byte c found at raw offset pos of a view's
// buffer is visible through the view.
type Filter interface {
	Keep(pos int, c byte) bool
}

// Predicate is a Filter that only looks at the byte.
type Predicate func(c byte) bool

// Keep implements Filter.
func (p Predicate) Keep(_ int, c byte) bool { return p(c) }

// FilterFunc adapts a position-aware function to Filter.
type FilterFunc func(pos int, c byte) bool

// Keep implements Filter.
func (f FilterFunc) Keep(pos int, c byte) bool { return f(pos, c) }

type acceptAll struct{}

func (acceptAll) Keep(int, byte) bool { return true }

// isNil reports whether f is nil, including a nil Predicate or FilterFunc
// stored in the interface.
func isNil(f Filter) bool {
	switch fn := f.(type) {
	case nil:
		return true
	case Predicate:
		return fn == nil
	case FilterFunc:
		return fn == nil
	}
	return false
}

// AcceptAll is the default filter shared by every view built without one.
// It is comparable, so f == AcceptAll tells whether a view kept the default.
var AcceptAll Filter = acceptAll{}

// Not inverts f.
func Not(f Filter) Filter {
	return FilterFunc(func(pos int, c byte) bool { return !f.Keep(pos, c) })
}

// And keeps a byte only if every filter keeps it. Filters run in order and
// evaluation stops at the first rejection.
func And(fs ...Filter) Filter {
	return FilterFunc(func(pos int, c byte) bool {
		for _, f := range fs {
			if !f.Keep(pos, c) {
				return false
			}
		}
		return true
	})
}

// Or keeps a byte if any filter keeps it, stopping at the first match.
func Or(fs ...Filter) Filter {
	return FilterFunc(func(pos int, c byte) bool {
		for _, f := range fs {
			if f.Keep(pos, c) {
				return true
			}
		}
		return false
	})
}

// inRange keeps bytes whose raw offset lies in [lo, hi) and that base keeps.
func inRange(base Filter, lo, hi int) Filter {
	return FilterFunc(func(pos int, c byte) bool {
		return pos >= lo && pos < hi && base.Keep(pos, c)
	})
}

// Byte matches exactly b.
func Byte(b byte) Predicate {
	return func(c byte) bool { return c == b }
}

// AnyOf matches any byte contained in set.
func AnyOf(set string) Predicate {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}
	return func(c byte) bool { return table[c] }
}

var (
	IsVowel = AnyOf("aeiouAEIOU")
	IsSpace = AnyOf(" \t\n\v\f\r")
	IsPunct = AnyOf("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")

	IsDigit Predicate = func(c byte) bool { return c >= '0' && c <= '9' }
	IsUpper Predicate = func(c byte) bool { return c >= 'A' && c <= 'Z' }
	IsLower Predicate = func(c byte) bool { return c >= 'a' && c <= 'z' }
	IsAlpha Predicate = func(c byte) bool { return IsUpper(c) || IsLower(c) }
)
