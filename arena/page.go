package arena

import "unsafe"

// Page is a fixed-capacity byte buffer with a write cursor.
//
// Values are appended one after the other, each followed by a NUL byte.
// Bytes once written are never changed, moved or freed individually.
type Page struct {
	buf []byte
	n   int
}

// NewPage creates an empty page of the given capacity in bytes.
func NewPage(capacity int) *Page {
	assert(capacity > 0, "arena: page capacity must be positive")
	return &Page{buf: make([]byte, capacity)}
}

// Cap returns the capacity of the page in bytes.
func (p *Page) Cap() int {
	return len(p.buf)
}

// Len returns the number of bytes written, terminators included.
func (p *Page) Len() int {
	return p.n
}

// Free returns the number of unused trailing bytes.
func (p *Page) Free() int {
	return len(p.buf) - p.n
}

// IsEmpty reports whether nothing has been written to the page.
func (p *Page) IsEmpty() bool {
	return p.n == 0
}

// Fits reports whether a value of n bytes, plus terminator, fits into the
// trailing space of the page.
func (p *Page) Fits(n int) bool {
	return n+1 <= p.Free()
}

// Put writes s into the trailing space of the page.
//
// Returns ErrPageFull if s and its terminator do not fit.
func (p *Page) Put(s string) (Str, error) {
	if !p.Fits(len(s)) {
		return Null, ErrPageFull
	}
	off := p.n
	copy(p.buf[off:], s)
	p.buf[off+len(s)] = 0
	p.n += len(s) + 1
	return strOf(p.buf[off:p.n], len(s)), nil
}

// Owns reports whether the storage of s lies inside this page.
func (p *Page) Owns(s Str) bool {
	if s.IsNull() {
		return false
	}
	base := uintptr(unsafe.Pointer(&p.buf[0]))
	addr := s.Addr()
	return addr >= base && addr < base+uintptr(p.n)
}
