package arena

import "errors"

var (
	// ErrInvalidConfig signals an invalid arena configuration.
	ErrInvalidConfig = errors.New("arena: invalid configuration")
	// ErrPageFull signals that a value does not fit into the trailing space of a page.
	ErrPageFull = errors.New("arena: page full")
)
