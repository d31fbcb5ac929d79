/*
Package textfile provides API helpers to load text files as ropes.

Files are read in fragments by a small pool of reader goroutines. Every fragment
read is broadcast to subscribers, one of them assembling the rope in file
order, others reporting progress to clients. Load itself is synchronous and
returns the complete rope.

Every fragment of the file becomes one leaf of the resulting rope, and the
rope's tree is balanced.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
