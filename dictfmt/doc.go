/*
Package dictfmt renders dicts for human inspection.

Tree prints the shape of a dict's AA-tree, one node per line, annotated with
levels. Table prints the entries of a dict in key order, aligned to the
display width of keys and truncated to the width of a console. Both are
diagnostic aids and not meant to be parsed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dictfmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dict'
func tracer() tracing.Trace {
	return tracing.Select("dict")
}
