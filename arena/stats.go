package arena

import "fmt"

// Stats aggregates storage metrics of an arena.
type Stats struct {
	Pages      int    // number of pages
	PageBytes  int    // total capacity of all pages
	UsedBytes  int    // bytes written into pages, terminators included
	SideAllocs int    // number of live side allocations
	SideBytes  int    // bytes held by side allocations
	Allocs     uint64 // number of values stored since creation
}

// Add combines two statistics.
func (s Stats) Add(t Stats) Stats {
	return Stats{
		Pages:      s.Pages + t.Pages,
		PageBytes:  s.PageBytes + t.PageBytes,
		UsedBytes:  s.UsedBytes + t.UsedBytes,
		SideAllocs: s.SideAllocs + t.SideAllocs,
		SideBytes:  s.SideBytes + t.SideBytes,
		Allocs:     s.Allocs + t.Allocs,
	}
}

// Usage returns the percentage of page capacity written so far.
func (s Stats) Usage() float64 {
	if s.PageBytes == 0 {
		return 0
	}
	return float64(s.UsedBytes) / float64(s.PageBytes) * 100
}

func (s Stats) String() string {
	return fmt.Sprintf("Arena{pages: %d, reserved: %d B, used: %d B, usage: %.1f%%, side: %d/%d B, allocs: %d}",
		s.Pages, s.PageBytes, s.UsedBytes, s.Usage(), s.SideAllocs, s.SideBytes, s.Allocs)
}
