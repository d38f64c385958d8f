package arena

// DefaultScratchSize is the size of the first buffer of a scratch arena.
const DefaultScratchSize = 4096

// Scratch is a short-lived bump allocator for temporary results.
//
// Memory handed out by Alloc is valid until the next call to Reset, which
// rewinds the current buffer for reuse. Callers must not retain scratch memory
// beyond that point. A zero Scratch is ready to use.
type Scratch struct {
	buf []byte
	off int
}

// NewScratch creates a scratch arena with a first buffer of size bytes.
func NewScratch(size int) *Scratch {
	if size <= 0 {
		size = DefaultScratchSize
	}
	return &Scratch{buf: make([]byte, size)}
}

// Alloc returns n bytes of scratch memory, with length n.
//
// If the current buffer is exhausted, a new one is allocated; memory handed
// out from the old buffer stays valid.
func (sc *Scratch) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if sc.off+n > len(sc.buf) {
		size := max(DefaultScratchSize, 2*len(sc.buf), n)
		sc.buf = make([]byte, size)
		sc.off = 0
	}
	b := sc.buf[sc.off : sc.off+n : sc.off+n]
	sc.off += n
	return b
}

// Reset rewinds the scratch arena. Memory handed out before is invalidated.
func (sc *Scratch) Reset() {
	sc.off = 0
}

// Available returns the number of bytes left in the current buffer.
func (sc *Scratch) Available() int {
	return len(sc.buf) - sc.off
}
