package strvec

// Find returns the index of the first element with value s, or NotFound.
// The empty string matches only empty strings, never null.
func (v *Vec[D]) Find(s string) int {
	return v.FindFrom(s, 0)
}

// FindFrom is like Find, but starts searching at index start.
func (v *Vec[D]) FindFrom(s string, start int) int {
	return v.find(start, func(x Str) bool {
		return x.EqualString(s)
	})
}

// FindI returns the index of the first element with value s, ignoring ASCII
// letter case, or NotFound.
func (v *Vec[D]) FindI(s string) int {
	return v.FindIFrom(s, 0)
}

// FindIFrom is like FindI, but starts searching at index start.
func (v *Vec[D]) FindIFrom(s string, start int) int {
	return v.find(start, func(x Str) bool {
		return x.EqualStringFold(s)
	})
}

// FindNull returns the index of the first null element at or after start,
// or NotFound.
func (v *Vec[D]) FindNull(start int) int {
	return v.find(start, Str.IsNull)
}

// FindStr returns the index of the first element at or after start whose
// value equals the value of q. A null query matches null elements only.
func (v *Vec[D]) FindStr(q Str, start int) int {
	return v.find(start, q.Equal)
}

// find scans linearly from start. A start beyond the last element finds
// nothing; a negative start is an error of the caller.
func (v *Vec[D]) find(start int, match func(Str) bool) int {
	if start < 0 {
		outOfBounds(start, len(v.slots))
	}
	for i := start; i < len(v.slots); i++ {
		if match(v.slots[i].str) {
			return i
		}
	}
	return NotFound
}
