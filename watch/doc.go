/*
Package watch provides an observable positional list.

A watch.List wraps a collect.PosList and broadcasts every structural
change (insert, remove, set) to any number of subscribers. Subscribers
receive change events over a channel and may come and go at any time.
Event delivery is buffered; a consumer that stops draining its channel
will eventually back-pressure the mutating caller.

Typical use is keeping views in sync with a model list, e.g. a UI
component mirroring an edit buffer's line list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collect'
func tracer() tracing.Trace {
	return tracing.Select("collect")
}
