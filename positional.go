package collect

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// dnode is a double-link storage unit of PosList. Header and trailer
// sentinels carry no value; a node with a nil prev or next link outside the
// sentinels has been removed from its list.
type dnode[T any] struct {
	value T
	prev  *dnode[T]
	next  *dnode[T]
}

// Position addresses a value within a PosList.
//
// Positions stay valid across edits elsewhere in the list. Removing the
// value at a position invalidates that position (and only that one);
// list operations reject invalidated positions with ErrInvalidPosition.
//
// The zero Position is not located anywhere; Located reports this.
type Position[T any] struct {
	list *PosList[T]
	node *dnode[T]
}

// Located reports whether the position addresses a node of some list.
func (p Position[T]) Located() bool {
	return p.list != nil && p.node != nil
}

// Value returns the value stored at this position.
func (p Position[T]) Value() T {
	assert(p.Located(), "Value called on unlocated position")
	return p.node.value
}

// Next returns the position after p, or false if p is the last position
// or has been invalidated.
func (p Position[T]) Next() (Position[T], bool) {
	if !p.Located() || p.node.next == nil {
		return Position[T]{}, false
	}
	return p.list.position(p.node.next)
}

// Prev returns the position before p, or false if p is the first position
// or has been invalidated.
func (p Position[T]) Prev() (Position[T], bool) {
	if !p.Located() || p.node.prev == nil {
		return Position[T]{}, false
	}
	return p.list.position(p.node.prev)
}

// PosList is a doubly linked sequence of values, addressed by positions.
//
// Every value sits between a header and a trailer sentinel, which makes all
// edits uniform: each insertion happens between two existing nodes, each
// removal unlinks a node with two live neighbours.
//
// The zero value is an empty list, ready to use.
type PosList[T any] struct {
	header  *dnode[T]
	trailer *dnode[T]
	length  int
}

// NewPosList creates an empty positional list.
func NewPosList[T any]() *PosList[T] {
	l := &PosList[T]{}
	l.lazyInit()
	return l
}

func (l *PosList[T]) lazyInit() {
	if l.header != nil {
		return
	}
	l.header = &dnode[T]{}
	l.trailer = &dnode[T]{}
	l.header.next = l.trailer
	l.trailer.prev = l.header
}

// position wraps a node as a position, or signals false for sentinels.
func (l *PosList[T]) position(n *dnode[T]) (Position[T], bool) {
	if n == l.header || n == l.trailer {
		return Position[T]{}, false
	}
	return Position[T]{list: l, node: n}, true
}

// validate returns the node at position p.
//
// The position must belong to this list and its node must not have been
// removed, otherwise ErrInvalidPosition is returned.
func (l *PosList[T]) validate(p Position[T]) (*dnode[T], error) {
	if p.list != l || p.node == nil {
		return nil, ErrInvalidPosition
	}
	if p.node.prev == nil || p.node.next == nil {
		// node has been removed from the list
		return nil, ErrInvalidPosition
	}
	return p.node, nil
}

// insert links a new node holding v between prev and next.
func (l *PosList[T]) insert(v T, prev, next *dnode[T]) Position[T] {
	assert(prev.next == next && next.prev == prev, "posList insert between non-adjacent nodes")
	n := &dnode[T]{value: v, prev: prev, next: next}
	prev.next = n
	next.prev = n
	l.length++
	return Position[T]{list: l, node: n}
}

// Len returns the number of values in the list.
func (l *PosList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty reports whether the list holds no values.
func (l *PosList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the first position, or false for an empty list.
func (l *PosList[T]) First() (Position[T], bool) {
	if l == nil || l.header == nil {
		return Position[T]{}, false
	}
	return l.position(l.header.next)
}

// Last returns the last position, or false for an empty list.
func (l *PosList[T]) Last() (Position[T], bool) {
	if l == nil || l.header == nil {
		return Position[T]{}, false
	}
	return l.position(l.trailer.prev)
}

// AddFirst inserts v at the front and returns its position. O(1).
func (l *PosList[T]) AddFirst(v T) Position[T] {
	l.lazyInit()
	return l.insert(v, l.header, l.header.next)
}

// AddLast inserts v at the back and returns its position. O(1).
func (l *PosList[T]) AddLast(v T) Position[T] {
	l.lazyInit()
	return l.insert(v, l.trailer.prev, l.trailer)
}

// AddBefore inserts v just before position p and returns the new position.
func (l *PosList[T]) AddBefore(p Position[T], v T) (Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return Position[T]{}, err
	}
	return l.insert(v, n.prev, n), nil
}

// AddAfter inserts v just after position p and returns the new position.
func (l *PosList[T]) AddAfter(p Position[T], v T) (Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return Position[T]{}, err
	}
	return l.insert(v, n, n.next), nil
}

// Set places v at position p and returns the value previously stored there.
func (l *PosList[T]) Set(p Position[T], v T) (T, error) {
	n, err := l.validate(p)
	if err != nil {
		var void T
		return void, err
	}
	old := n.value
	n.value = v
	return old, nil
}

// Remove unlinks the node at position p and returns its value.
//
// The position is invalidated; any further use of it fails with
// ErrInvalidPosition. Other positions are unaffected.
func (l *PosList[T]) Remove(p Position[T]) (T, error) {
	n, err := l.validate(p)
	if err != nil {
		var void T
		return void, err
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil // flags the node as removed
	n.next = nil
	l.length--
	return n.value, nil
}

// All returns an iterator over all values in list order.
//
// The sequence is lazy and restartable.
func (l *PosList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || l.header == nil {
			return
		}
		for n := l.header.next; n != l.trailer; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Positions returns an iterator over all positions in list order.
//
// Removing the currently visited position during iteration is safe; the
// iterator has already moved past it.
func (l *PosList[T]) Positions() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		if l == nil || l.header == nil {
			return
		}
		n := l.header.next
		for n != l.trailer {
			next := n.next
			if !yield(Position[T]{list: l, node: n}) {
				return
			}
			n = next
		}
	}
}

// String returns a debugging representation of the list.
func (l *PosList[T]) String() string {
	var b strings.Builder
	b.WriteString("PosList(")
	first := true
	for v := range l.All() {
		if !first {
			b.WriteString(" <-> ")
		}
		fmt.Fprintf(&b, "%v", v)
		first = false
	}
	b.WriteString(")")
	return b.String()
}
