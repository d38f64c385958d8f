/*
Package arena provides the storage layer for string vectors.

Strings are packed into fixed-capacity pages with bump allocation. Every value
is written once, followed by a NUL byte, and is never moved, overwritten or
individually freed. Values which cannot be placed into a page are kept as
side allocations of exactly the needed size.

Clients refer to stored values by Str handles. A handle points to the first
byte of a value, so two handles are equal if and only if they refer to the
same storage. Handles stay dereferenceable for as long as they are held:
abandoned storage is never handed out again, and the Go garbage collector keeps
a page alive while any handle points into it.

The package is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
