/*
Package textfile loads UTF-8 text files as string vectors, one element per line.

Files may be loaded synchronously with Load, in the background with
LoadAsync, or several at once with LoadFiles. Background loading broadcasts
progress messages to any number of subscribers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
