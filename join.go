package strvec

import (
	"strings"

	"github.com/npillmayer/strvec/arena"
)

// Join concatenates the values of all non-null elements, with sep between
// consecutive values. Null elements are skipped together with their separator.
func (v *Vec[D]) Join(sep string) string {
	var b strings.Builder
	b.Grow(v.joinLen(sep))
	first := true
	for _, sl := range v.slots {
		if sl.str.IsNull() {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(sl.str.String())
		first = false
	}
	return b.String()
}

// AppendJoin appends the joined element values to dst and returns the
// extended buffer.
func (v *Vec[D]) AppendJoin(dst []byte, sep string) []byte {
	first := true
	for _, sl := range v.slots {
		if sl.str.IsNull() {
			continue
		}
		if !first {
			dst = append(dst, sep...)
		}
		dst = append(dst, sl.str.String()...)
		first = false
	}
	return dst
}

// JoinTemp is like Join, but allocates the result from a scratch arena.
// The result is valid until tmp is reset and must not be retained beyond.
func (v *Vec[D]) JoinTemp(tmp *arena.Scratch, sep string) []byte {
	n := v.joinLen(sep)
	if n == 0 {
		return []byte{}
	}
	return v.AppendJoin(tmp.Alloc(n)[:0], sep)
}

func (v *Vec[D]) joinLen(sep string) int {
	n, values := 0, 0
	for _, sl := range v.slots {
		if !sl.str.IsNull() {
			n += sl.str.Len()
			values++
		}
	}
	if values > 1 {
		n += len(sep) * (values - 1)
	}
	return n
}
