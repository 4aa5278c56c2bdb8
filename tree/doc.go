/*
Package tree provides node-based hierarchical containers.

Two tree flavors are implemented. Binary is a general positional binary
tree: clients shape it explicitly through validated position handles
(AddRoot, AddLeft, AddRight, Attach) and walk it with Euler tours or the
derived pre-/in-/post-order iterators. Search is a binary search tree for
ordered values with the usual insert/search/remove operations and a lazy
in-order iterator yielding values in ascending order.

Expr builds on Binary: an arithmetic expression tree parsed from infix
input, evaluated bottom-up.

Each node owns its children exclusively; trees are connected from the root
and contain no cycles. Neither tree balances itself, so the cost of search
tree operations is O(h) with h the current height.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
