/*
Package strvec offers a compact, growable vector of strings.

String Vectors

A string vector keeps its elements in arena pages instead of allocating every
string individually. Strings are copied into fixed-capacity pages, one after
the other, and are never moved or overwritten afterwards. Values which do not
fit into a page are kept as separate side allocations.

Elements are handed out as Str handles. A handle stays valid, with the same
address and the same bytes, even after its element has been removed from the
vector or overwritten by a new value: storage is abandoned, never reused.
Handles therefore double as element identities, which is what Remove uses to
find an element.

	v := strvec.New()
	v.Append("foo")
	v.AppendNull()
	s := v.At(0)       // handle to "foo"
	v.RemoveAt(0)      // s is still readable
	fmt.Println(s)     // foo

Null is a value of its own, different from the empty string. It sorts before
any other value and is skipped in joined output.

The generic variant Vec[D] attaches one value of type D to every element.
StrVec is the variant without such a payload.

String vectors are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strvec

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// StrVecError is an error type for the strvec module
type StrVecError string

func (e StrVecError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an element index is outside the
// range of a vector. It is raised as a panic, as it signals a programming error.
const ErrIndexOutOfBounds = StrVecError("index out of bounds")

// ErrStaleIterator is raised as a panic whenever an iterator or reader is used
// after its vector has been structurally modified.
const ErrStaleIterator = StrVecError("vector modified during iteration")

// ErrInvalidConfig is flagged for inconsistent vector configurations.
const ErrInvalidConfig = StrVecError("invalid configuration")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

func outOfBounds(idx, n int) {
	panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, idx, n))
}
