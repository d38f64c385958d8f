package strvec

import "iter"

// Iterator is a read-only, random-access position within a vector.
//
// Iterators are values; moving creates a new iterator. Any structural change
// of the vector (insert, remove, sort, reset, split, copy) invalidates all of
// its iterators, and using an invalidated iterator panics with ErrStaleIterator.
type Iterator[D any] struct {
	v   *Vec[D]
	pos int
	gen uint64
}

// Begin returns an iterator positioned at the first element.
func (v *Vec[D]) Begin() Iterator[D] {
	return v.IteratorAt(0)
}

// End returns an iterator positioned behind the last element.
func (v *Vec[D]) End() Iterator[D] {
	return v.IteratorAt(len(v.slots))
}

// IteratorAt returns an iterator positioned at k, with 0 ≤ k ≤ Len.
func (v *Vec[D]) IteratorAt(k int) Iterator[D] {
	if k < 0 || k > len(v.slots) {
		outOfBounds(k, len(v.slots)+1)
	}
	return Iterator[D]{v: v, pos: k, gen: v.gen}
}

func (it Iterator[D]) check() {
	if it.v == nil || it.gen != it.v.gen {
		panic(ErrStaleIterator)
	}
}

// Add returns an iterator k positions further on. The result must lie
// within [0,Len].
func (it Iterator[D]) Add(k int) Iterator[D] {
	it.check()
	return it.v.IteratorAt(it.pos + k)
}

// Next returns an iterator for the following position.
func (it Iterator[D]) Next() Iterator[D] {
	return it.Add(1)
}

// Done reports whether the iterator is positioned behind the last element.
func (it Iterator[D]) Done() bool {
	it.check()
	return it.pos == len(it.v.slots)
}

// Index returns the position of the iterator.
func (it Iterator[D]) Index() int {
	return it.pos
}

// Str returns the handle of the element at the iterator's position.
func (it Iterator[D]) Str() Str {
	it.check()
	return it.v.At(it.pos)
}

// Data returns the payload of the element at the iterator's position.
func (it Iterator[D]) Data() D {
	it.check()
	return it.v.Data(it.pos)
}

// Equal reports whether two iterators denote the same position of the
// same vector.
func (it Iterator[D]) Equal(other Iterator[D]) bool {
	return it.v == other.v && it.pos == other.pos
}

// Values returns an iterator over all element handles in order.
// Structural changes during iteration panic with ErrStaleIterator.
func (v *Vec[D]) Values() iter.Seq[Str] {
	return func(yield func(Str) bool) {
		for _, s := range v.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// All returns an iterator over all indices and element handles in order.
// Structural changes during iteration panic with ErrStaleIterator.
func (v *Vec[D]) All() iter.Seq2[int, Str] {
	return func(yield func(int, Str) bool) {
		gen := v.gen
		for i := 0; i < len(v.slots); i++ {
			if !yield(i, v.slots[i].str) {
				return
			}
			if v.gen != gen {
				panic(ErrStaleIterator)
			}
		}
	}
}
