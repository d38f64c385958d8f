package arena

// sideStore keeps values which are allocated individually, outside of pages.
// Allocations are keyed by the address of their first byte.
type sideStore struct {
	allocs map[*byte]int // allocation size, terminator included
	bytes  int
}

func (ss *sideStore) put(s string) Str {
	if ss.allocs == nil {
		ss.allocs = make(map[*byte]int)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	ss.allocs[&b[0]] = len(b)
	ss.bytes += len(b)
	return strOf(b, len(s))
}

func (ss *sideStore) owns(s Str) bool {
	if s.IsNull() {
		return false
	}
	_, ok := ss.allocs[s.p]
	return ok
}

// release drops the side store's reference to s. Holders of s still see the
// old bytes; they are collected once the last handle is gone.
func (ss *sideStore) release(s Str) bool {
	if s.IsNull() {
		return false
	}
	size, ok := ss.allocs[s.p]
	if !ok {
		return false
	}
	delete(ss.allocs, s.p)
	ss.bytes -= size
	return true
}

func (ss *sideStore) count() int {
	return len(ss.allocs)
}

func (ss *sideStore) reset() {
	ss.allocs = nil
	ss.bytes = 0
}
