package strvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/strvec/arena"
)

// Str is a handle to the storage of a vector element. The zero Str is null.
type Str = arena.Str

// Null is the null element value.
var Null = arena.Null

// NotFound is returned by the Find family of methods if no element matches.
const NotFound = -1

// slot is the descriptor of one element: where its bytes live, plus payload.
type slot[D any] struct {
	str  Str
	kind arena.Kind
	data D
}

// Vec is a vector of strings carrying a payload of type D with every element.
//
// A vector created by
//
//	Vec[D]{}
//
// is a valid object and behaves like an empty vector with default configuration.
// A Vec must not be copied by value, as copies would share slots and pages;
// use Clone or CopyFrom to copy a vector.
//
// Strings are stored in arena pages. Accessing an element returns a handle to
// its storage, which stays valid after the element has been removed or
// overwritten.
//
//	Operation      |  Complexity
//	---------------+------------
//	At, Set        |  O(1)
//	Append         |  O(1) amortized
//	Insert, Remove |  O(n)
//	RemoveAtFast   |  O(1)
//	Find, Remove   |  O(n)
//	Sort           |  O(n log n)
type Vec[D any] struct {
	cfg   Config
	arena arena.Arena
	slots []slot[D]
	gen   uint64 // bumped with every structural change
}

// StrVec is a vector of strings without payload.
type StrVec = Vec[struct{}]

// New creates an empty string vector with default configuration.
func New() *StrVec {
	return &StrVec{}
}

// NewWithConfig creates an empty string vector with a validated configuration.
func NewWithConfig(cfg Config) (*StrVec, error) {
	return Make[struct{}](cfg)
}

// NewWithData creates an empty vector carrying a payload of type D with
// every element.
func NewWithData[D any]() *Vec[D] {
	return &Vec[D]{}
}

// Make creates an empty vector with payload type D and a validated configuration.
func Make[D any](cfg Config) (*Vec[D], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	v := &Vec[D]{cfg: cfg}
	v.initStorage()
	return v, nil
}

func (v *Vec[D]) initStorage() {
	a, err := arena.New(v.cfg.arenaConfig())
	assert(err == nil, "strvec: configuration must have been validated")
	v.arena = *a
	if v.cfg.Capacity > 0 {
		v.slots = make([]slot[D], 0, v.cfg.Capacity)
	}
}

// Config returns the vector's configuration.
func (v *Vec[D]) Config() Config {
	return v.cfg
}

// Len returns the number of elements.
func (v *Vec[D]) Len() int {
	return len(v.slots)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[D]) IsEmpty() bool {
	return len(v.slots) == 0
}

// --- Adding elements -------------------------------------------------------

func (v *Vec[D]) put(s string) slot[D] {
	str, kind := v.arena.Put(s)
	return slot[D]{str: str, kind: kind}
}

func (v *Vec[D]) putStr(s Str) slot[D] {
	str, kind := v.arena.PutStr(s)
	return slot[D]{str: str, kind: kind}
}

func (v *Vec[D]) appendSlot(sl slot[D]) int {
	v.slots = append(v.slots, sl)
	v.gen++
	return len(v.slots) - 1
}

// Append adds a copy of s at the end of the vector and returns its index.
func (v *Vec[D]) Append(s string) int {
	return v.appendSlot(v.put(s))
}

// AppendNull adds a null element at the end of the vector and returns its index.
func (v *Vec[D]) AppendNull() int {
	return v.appendSlot(slot[D]{})
}

// AppendStr adds a copy of the value of s, which may come from any vector,
// and returns its index. Null stays null.
func (v *Vec[D]) AppendStr(s Str) int {
	return v.appendSlot(v.putStr(s))
}

// AppendWithData adds a copy of s together with payload d and returns its index.
func (v *Vec[D]) AppendWithData(s string, d D) int {
	sl := v.put(s)
	sl.data = d
	return v.appendSlot(sl)
}

// InsertAt inserts a copy of s at position idx, with 0 ≤ idx ≤ Len.
// Elements at positions from idx on move one place up.
func (v *Vec[D]) InsertAt(idx int, s string) {
	v.insertSlot(idx, v.put(s))
}

// InsertNullAt inserts a null element at position idx, with 0 ≤ idx ≤ Len.
func (v *Vec[D]) InsertNullAt(idx int) {
	v.insertSlot(idx, slot[D]{})
}

func (v *Vec[D]) insertSlot(idx int, sl slot[D]) {
	if idx < 0 || idx > len(v.slots) {
		outOfBounds(idx, len(v.slots)+1)
	}
	v.slots = slices.Insert(v.slots, idx, sl)
	v.gen++
}

// --- Accessing elements ----------------------------------------------------

func (v *Vec[D]) mustIndex(idx int) {
	if idx < 0 || idx >= len(v.slots) {
		outOfBounds(idx, len(v.slots))
	}
}

// At returns the handle of the element at idx. No bytes are copied.
func (v *Vec[D]) At(idx int) Str {
	v.mustIndex(idx)
	return v.slots[idx].str
}

// Get returns the value of the element at idx as a Go string. Null is
// returned as the empty string; use IsNull to tell them apart.
func (v *Vec[D]) Get(idx int) string {
	return v.At(idx).String()
}

// IsNull reports whether the element at idx is null.
func (v *Vec[D]) IsNull(idx int) bool {
	return v.At(idx).IsNull()
}

// KindAt tells where the storage of the element at idx lives.
func (v *Vec[D]) KindAt(idx int) arena.Kind {
	v.mustIndex(idx)
	return v.slots[idx].kind
}

// SetAt replaces the value of the element at idx by a copy of s.
//
// The element keeps its position and payload. Handles to the former value
// stay readable; the vector gives up a former side allocation, while former
// page storage is abandoned.
func (v *Vec[D]) SetAt(idx int, s string) {
	v.mustIndex(idx)
	v.replace(idx, v.put(s))
}

// SetNullAt replaces the value of the element at idx by null.
func (v *Vec[D]) SetNullAt(idx int) {
	v.mustIndex(idx)
	v.replace(idx, slot[D]{})
}

func (v *Vec[D]) replace(idx int, sl slot[D]) {
	old := v.slots[idx]
	if old.kind == arena.KindSide {
		v.arena.Release(old.str)
	}
	sl.data = old.data
	v.slots[idx] = sl
}

// Data returns the payload of the element at idx.
func (v *Vec[D]) Data(idx int) D {
	v.mustIndex(idx)
	return v.slots[idx].data
}

// DataAt returns a pointer to the payload of the element at idx.
// The pointer is valid until the next structural change of the vector.
func (v *Vec[D]) DataAt(idx int) *D {
	v.mustIndex(idx)
	return &v.slots[idx].data
}

// SetData replaces the payload of the element at idx.
func (v *Vec[D]) SetData(idx int, d D) {
	v.mustIndex(idx)
	v.slots[idx].data = d
}

// Strings returns a copy of all values as Go strings, null as "".
func (v *Vec[D]) Strings() []string {
	out := make([]string, len(v.slots))
	for i, sl := range v.slots {
		out[i] = strings.Clone(sl.str.String())
	}
	return out
}

// --- Removing elements -----------------------------------------------------

// RemoveAt removes the element at idx and returns its handle, which stays
// readable. Elements after idx move one place down.
func (v *Vec[D]) RemoveAt(idx int) Str {
	v.mustIndex(idx)
	s := v.slots[idx].str
	v.slots = slices.Delete(v.slots, idx, idx+1)
	v.gen++
	return s
}

// RemoveAtFast removes the element at idx by moving the last element into
// its place, and returns the removed handle. Order is not preserved.
func (v *Vec[D]) RemoveAtFast(idx int) Str {
	v.mustIndex(idx)
	s := v.slots[idx].str
	last := len(v.slots) - 1
	v.slots[idx] = v.slots[last]
	v.slots[last] = slot[D]{}
	v.slots = v.slots[:last]
	v.gen++
	return s
}

// Remove removes the element whose handle is identical to s, i.e. which
// refers to the same storage, by moving the last element into its place.
//
// s must have been obtained from this vector. If no current element holds
// exactly this handle, Remove returns false. Null carries no identity and is
// never found.
func (v *Vec[D]) Remove(s Str) bool {
	if s.IsNull() {
		return false
	}
	for i, sl := range v.slots {
		if sl.str == s {
			v.RemoveAtFast(i)
			return true
		}
	}
	return false
}

// Reset removes all elements and drops all storage. Handles obtained before
// stay readable.
func (v *Vec[D]) Reset() {
	clear(v.slots)
	v.slots = v.slots[:0]
	v.arena.Reset()
	v.gen++
}

// --- Copying ---------------------------------------------------------------

// Clone returns a deep copy of v: a fresh arena with value-identical
// elements and copied payloads.
func (v *Vec[D]) Clone() *Vec[D] {
	c := &Vec[D]{}
	c.CopyFrom(v)
	return c
}

// CopyFrom makes v a deep copy of src, discarding v's former content.
func (v *Vec[D]) CopyFrom(src *Vec[D]) {
	if v == src {
		return
	}
	v.cfg = src.cfg
	v.slots = nil
	v.initStorage()
	v.slots = slices.Grow(v.slots, len(src.slots))
	for _, sl := range src.slots {
		c := v.putStr(sl.str)
		c.data = sl.data
		v.slots = append(v.slots, c)
	}
	v.gen++
}

// Stats returns storage statistics of the vector's arena.
func (v *Vec[D]) Stats() arena.Stats {
	return v.arena.Stats()
}

// Pages iterates over the arena pages of v, in allocation order.
func (v *Vec[D]) Pages() iter.Seq[*arena.Page] {
	return v.arena.Pages()
}
