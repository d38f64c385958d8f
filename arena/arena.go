package arena

import (
	"iter"
)

// Kind tells where the storage of a value lives.
type Kind uint8

const (
	KindNull Kind = iota // no storage
	KindPage             // inside a page
	KindSide             // individual side allocation
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPage:
		return "page"
	case KindSide:
		return "side"
	}
	return "kind?"
}

// Arena owns a chain of pages and a set of side allocations.
//
// An Arena created by
//
//	Arena{}
//
// is ready to use with the default configuration.
type Arena struct {
	cfg    Config
	pages  []*Page
	side   sideStore
	allocs uint64
}

// New creates an empty arena with a validated configuration.
func New(cfg Config) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Arena{cfg: cfg.normalized()}, nil
}

// Config returns the effective configuration.
func (a *Arena) Config() Config {
	return a.cfg.normalized()
}

// Put stores a copy of s and returns its handle together with the kind of
// storage chosen:
//
//  1. the trailing space of the current page, if s and its terminator fit;
//  2. else the start of a new page, if s fits into a page of the next capacity;
//  3. else a side allocation of exactly len(s)+1 bytes.
//
// Unused trailing space of a page left behind by (2) is abandoned.
func (a *Arena) Put(s string) (Str, Kind) {
	a.allocs++
	if cur := a.current(); cur != nil && cur.Fits(len(s)) {
		str, _ := cur.Put(s)
		return str, KindPage
	}
	if capacity := a.nextPageCap(); len(s)+1 <= capacity {
		page := NewPage(capacity)
		a.pages = append(a.pages, page)
		T().Debugf("arena: new page #%d with %d bytes", len(a.pages), capacity)
		str, _ := page.Put(s)
		return str, KindPage
	}
	T().Debugf("arena: side allocation of %d bytes", len(s)+1)
	return a.side.put(s), KindSide
}

// PutStr stores a copy of the value of s. Null stays null and consumes no storage.
func (a *Arena) PutStr(s Str) (Str, Kind) {
	if s.IsNull() {
		return Null, KindNull
	}
	return a.Put(s.String())
}

// Release gives up the arena's ownership of a side allocation.
// Page storage cannot be released; for it, and for handles not owned by the
// arena, Release returns false.
func (a *Arena) Release(s Str) bool {
	return a.side.release(s)
}

// KindOf tells where the storage of s lives. Handles not owned by the arena
// (including released side allocations) report KindNull.
func (a *Arena) KindOf(s Str) Kind {
	switch {
	case s.IsNull():
		return KindNull
	case a.side.owns(s):
		return KindSide
	}
	for _, p := range a.pages {
		if p.Owns(s) {
			return KindPage
		}
	}
	return KindNull
}

// Pages returns an iterator over all pages in allocation order.
func (a *Arena) Pages() iter.Seq[*Page] {
	return func(yield func(*Page) bool) {
		for _, p := range a.pages {
			if !yield(p) {
				return
			}
		}
	}
}

// Reset drops all pages and side allocations. Handles obtained earlier stay
// readable, but the arena no longer owns their storage.
func (a *Arena) Reset() {
	T().Debugf("arena: reset, dropping %d pages and %d side allocations",
		len(a.pages), a.side.count())
	clear(a.pages)
	a.pages = a.pages[:0]
	a.side.reset()
}

// Stats returns the current storage statistics.
func (a *Arena) Stats() Stats {
	st := Stats{
		Pages:      len(a.pages),
		SideAllocs: a.side.count(),
		SideBytes:  a.side.bytes,
		Allocs:     a.allocs,
	}
	for _, p := range a.pages {
		st.PageBytes += p.Cap()
		st.UsedBytes += p.Len()
	}
	return st
}

func (a *Arena) current() *Page {
	if len(a.pages) == 0 {
		return nil
	}
	return a.pages[len(a.pages)-1]
}

func (a *Arena) nextPageCap() int {
	cfg := a.cfg.normalized()
	cur := a.current()
	if cur == nil {
		return cfg.PageSize
	}
	return min(max(cur.Cap()*2, cfg.PageSize), cfg.MaxPageSize)
}
