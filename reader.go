package strvec

import "io"

// Reader returns a reader for the joined bytes of v, as Join would produce
// them. The bytes are produced on the fly, without materializing the joined
// string. Structural changes of v invalidate the reader.
func (v *Vec[D]) Reader(sep string) io.Reader {
	return &vecReader[D]{v: v, sep: sep, gen: v.gen}
}

type vecReader[D any] struct {
	v       *Vec[D]
	sep     string
	gen     uint64
	idx     int    // next element
	piece   string // unread bytes of the current piece
	pending bool   // separator loaded, element idx follows
	started bool   // at least one value has been loaded
}

func (vr *vecReader[D]) Read(p []byte) (n int, err error) {
	if vr.gen != vr.v.gen {
		panic(ErrStaleIterator)
	}
	for n < len(p) {
		if vr.piece == "" && !vr.advance() {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		c := copy(p[n:], vr.piece)
		n += c
		vr.piece = vr.piece[c:]
	}
	return n, nil
}

// advance loads the next piece, which is either a separator or the value of
// the next non-null element. It returns false at the end of the vector.
func (vr *vecReader[D]) advance() bool {
	if vr.pending {
		vr.piece, vr.pending = vr.v.slots[vr.idx].str.String(), false
		vr.idx++
		return true
	}
	for vr.idx < len(vr.v.slots) && vr.v.slots[vr.idx].str.IsNull() {
		vr.idx++
	}
	if vr.idx == len(vr.v.slots) {
		return false
	}
	if vr.started {
		vr.piece, vr.pending = vr.sep, true
		return true
	}
	vr.started = true
	vr.piece = vr.v.slots[vr.idx].str.String()
	vr.idx++
	return true
}
