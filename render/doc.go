/*
Package render outputs containers in human-readable form, for debugging
and for teaching.

Binary trees can be dumped as Graphviz DOT for offline inspection, or
pretty-printed to a terminal with colored branch guides. Terminal output
respects the terminal width and measures labels with their East Asian
display width, so trees holding wide characters stay aligned.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collect'
func tracer() tracing.Trace {
	return tracing.Select("collect")
}
