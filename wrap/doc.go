/*
Package wrap breaks text into lines of a given width and stores them in
string vectors.

Line breaking follows the Unicode line breaking algorithm (UAX #14) to find
break opportunities and measures text with East Asian width rules (UAX #11).
Lines are filled first-fit: a break is inserted before the first fragment
which does not fit onto the current line. Mandatory breaks in the input
always end a line.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package wrap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
