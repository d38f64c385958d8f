package arena

import (
	"cmp"
	"unsafe"
)

// Str is a handle to the backing storage of one string value.
//
// The zero Str is the null value, which is different from the empty string.
// Str values are comparable; == reports whether two handles refer to the same
// storage. Use Equal to compare by value.
type Str struct {
	p *byte
	n int
}

// Null is the null value. It consumes no storage.
var Null = Str{}

// strOf makes a handle for the first n bytes of b. b must hold at least n+1
// bytes, the last of which is the NUL terminator.
func strOf(b []byte, n int) Str {
	assert(len(b) > n && b[n] == 0, "arena: value must be NUL terminated")
	return Str{p: &b[0], n: n}
}

// IsNull reports whether s is the null value.
func (s Str) IsNull() bool {
	return s.p == nil
}

// Len returns the length of the value in bytes. Null has length 0.
func (s Str) Len() int {
	return s.n
}

// String returns the value as a Go string, without copying.
// Null is returned as the empty string.
func (s Str) String() string {
	if s.p == nil {
		return ""
	}
	return unsafe.String(s.p, s.n)
}

// Bytes returns a copy of the value's bytes. Null returns nil.
func (s Str) Bytes() []byte {
	if s.p == nil {
		return nil
	}
	return append([]byte{}, s.String()...)
}

// Addr returns the address of the first byte of the value, or 0 for null.
func (s Str) Addr() uintptr {
	return uintptr(unsafe.Pointer(s.p))
}

// Equal reports whether s and t hold the same value.
// Null equals only null.
func (s Str) Equal(t Str) bool {
	if s.IsNull() || t.IsNull() {
		return s.IsNull() && t.IsNull()
	}
	return s.String() == t.String()
}

// EqualFold is like Equal, but ignores ASCII letter case.
func (s Str) EqualFold(t Str) bool {
	if s.IsNull() || t.IsNull() {
		return s.IsNull() && t.IsNull()
	}
	return s.n == t.n && CompareFold(s, t) == 0
}

// Compare orders handles by value: null is less than any other value,
// everything else is compared byte-wise.
func Compare(a, b Str) int {
	if c, done := compareNull(a, b); done {
		return c
	}
	return cmp.Compare(a.String(), b.String())
}

// CompareFold orders handles like Compare, but folds ASCII letters to lower
// case byte by byte.
func CompareFold(a, b Str) int {
	if c, done := compareNull(a, b); done {
		return c
	}
	return compareFold(a.String(), b.String())
}

func compareFold(x, y string) int {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		cx, cy := lower(x[i]), lower(y[i])
		if cx != cy {
			return cmp.Compare(cx, cy)
		}
	}
	return cmp.Compare(len(x), len(y))
}

func compareNull(a, b Str) (int, bool) {
	switch {
	case a.IsNull() && b.IsNull():
		return 0, true
	case a.IsNull():
		return -1, true
	case b.IsNull():
		return 1, true
	}
	return 0, false
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualString reports whether s is not null and holds the value t.
func (s Str) EqualString(t string) bool {
	return !s.IsNull() && s.String() == t
}

// EqualStringFold is like EqualString, but ignores ASCII letter case.
func (s Str) EqualStringFold(t string) bool {
	return !s.IsNull() && s.n == len(t) && compareFold(s.String(), t) == 0
}
