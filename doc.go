/*
Package dict offers an ordered associative container for byte-string keys and values.

Dicts

A Dict is an AA-tree (https://en.wikipedia.org/wiki/AA_tree), a binary search
tree which keeps itself balanced by storing a single integer level per node.
Two local rotations, skew and split, restore the balancing rules after an
insertion; deletion additionally lowers levels on its way back up.
All operations on a single key are O(log n).

Dicts are multimaps: inserting a key which is already present creates a second
entry. Lookup returns the first matching entry found while descending from the
root, which is not necessarily the one inserted last.

Ownership

Every entry records, separately for key and value, whether the tree borrows the
caller's buffer or copies it at insertion time, and whether it is responsible
for releasing the buffer when the entry goes away. Clients select this with
Ownership flags:

	d := dict.New()
	d.Insert(key, value, dict.OwnAll)   // tree copies and releases both
	d.Insert(key, value, 0)             // tree borrows both

Borrowed buffers must not be modified by the caller while they are stored in
the tree.

Dicts are not safe for concurrent use. Clients have to serialize access to a
single Dict themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package dict

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DictError is an error type for the dict module
type DictError string

func (e DictError) Error() string {
	return string(e)
}

// ErrAllocation is flagged whenever a buffer for a duplicated key or value
// could not be allocated. The dict is left unchanged.
const ErrAllocation = DictError("dict: cannot allocate buffer")

// ErrDestroyed is flagged when inserting into a dict which has been destroyed.
const ErrDestroyed = DictError("dict: dict has been destroyed")

// ErrInvariant is flagged by Check for a violation of the AA-tree rules.
const ErrInvariant = DictError("dict: tree invariant violated")

// ErrInvalidConfig signals an invalid dict configuration.
const ErrInvalidConfig = DictError("dict: invalid configuration")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DictError("dict: illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
