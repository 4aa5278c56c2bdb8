/*
Package collect provides elementary linked sequence containers.

Collections

The package centers on two list flavors: a singly linked List with
head-anchored O(1) prepend, and a doubly linked PosList which hands out
opaque positions for O(1) editing anywhere in the sequence. On top of these
sit the classic adapters, Stack, Queue, Deque and a circular Ring queue,
plus access-frequency bookkeeping (Favorites) and an insertion sort working
directly on positions.

Linked structures trade random access for cheap structural edits:

	Operation     |   List/PosList  |  Slice
	--------------+-----------------+--------
	Index         |   O(n)          |   O(1)
	Prepend       |   O(1)          |   O(n)
	Insert at pos |   O(1)          |   O(n)
	Iterate       |   O(n)          |   O(n)

Traversal is exposed as lazy, restartable iter.Seq sequences; ranging over
a sequence twice starts over at the head both times.

Positions are validated handles: editing through a position of a foreign
list, or through a position whose node has been removed, fails with
ErrInvalidPosition rather than corrupting the structure.

All containers are single-threaded and none of them lock. Sibling packages
build on these types: package tree for hierarchical containers, package
array for contiguous ones.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package collect

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CollectError is an error type for the collect module
type CollectError string

func (e CollectError) Error() string {
	return string(e)
}

// ErrNotFound is flagged whenever a value is searched for in a container
// which does not hold it.
const ErrNotFound = CollectError("value not found in container")

// ErrEmpty is flagged whenever a value is requested from an empty container.
const ErrEmpty = CollectError("container is empty")

// ErrInvalidPosition is flagged whenever a position does not belong to the
// list it is used with, or its node has already been removed.
const ErrInvalidPosition = CollectError("invalid position")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CollectError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
