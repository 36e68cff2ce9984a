/*
Package boundary locates sentence and word boundaries in text.

Word and non-word boundaries follow UAX#29 word breaking, driven by a
github.com/npillmayer/uax segmenter; sentence boundaries come from a
Punkt sentence model (github.com/neurosnap/sentences). Boundary offsets
are byte offsets into the text; consecutive boundaries delimit one
segment.

Word cursors carry positional state and are strictly per call: clients
position a fresh cursor on each text they segment. The underlying
breaker/segmenter pairs are recycled through a pool.

License

This project is provided under the terms of the 3-Clause BSD license.

SPDX-License-Identifier: BSD-3-Clause
*/
package boundary

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'digitalreasoning.boundary'.
func tracer() tracing.Trace {
	return tracing.Select("digitalreasoning.boundary")
}
