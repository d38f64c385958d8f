package strvec

import (
	"slices"

	"github.com/npillmayer/strvec/arena"
)

// Compare orders element values: null before anything else, all other
// values byte-wise.
func Compare(a, b Str) int {
	return arena.Compare(a, b)
}

// CompareNoCase orders element values like Compare, but folds ASCII letters
// to lower case.
func CompareNoCase(a, b Str) int {
	return arena.CompareFold(a, b)
}

// Sort orders the elements by Compare. Only element descriptors are moved,
// together with their payloads; string bytes stay in place.
// Sort is not stable.
func (v *Vec[D]) Sort() {
	v.SortFunc(Compare)
}

// SortNoCase orders the elements by CompareNoCase. It is not stable.
func (v *Vec[D]) SortNoCase() {
	v.SortFunc(CompareNoCase)
}

// SortFunc orders the elements by a client supplied comparison.
func (v *Vec[D]) SortFunc(cmp func(a, b Str) int) {
	slices.SortFunc(v.slots, func(x, y slot[D]) int {
		return cmp(x.str, y.str)
	})
	v.gen++
}
