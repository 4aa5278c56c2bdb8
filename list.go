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

// node is a single-link storage unit of List.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence of values.
//
// A list created by
//
//	List[int]{}
//
// is a valid object and behaves like an empty sequence. Nodes are owned by
// the list; unlinking a node releases it.
//
// Prepend runs in O(1); Append has to walk to the tail and runs in O(n).
type List[T comparable] struct {
	head   *node[T]
	length int
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the value at the head of the list.
// An empty list has no first value.
func (l *List[T]) First() (T, bool) {
	if l == nil || l.head == nil {
		var void T
		return void, false
	}
	return l.head.value, true
}

// Prepend links a new head node holding v. O(1).
func (l *List[T]) Prepend(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.length++
}

// Append walks to the tail and links a new node holding v. O(n).
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.length++
		return
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	l.length++
}

// Values returns an iterator over all values in list order.
//
// The sequence is lazy and restartable: ranging over it a second time starts
// over at the head.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Find traverses the list and returns the first value equal to v.
// The second return value is false if no node holds v.
func (l *List[T]) Find(v T) (T, bool) {
	for w := range l.Values() {
		if w == v {
			return w, true
		}
	}
	var void T
	return void, false
}

// Contains reports whether some node of the list holds v.
func (l *List[T]) Contains(v T) bool {
	_, ok := l.Find(v)
	return ok
}

// Remove unlinks the first node holding v and releases it.
//
// Remove signals ErrNotFound when no node holds v; the list is unchanged in
// that case.
func (l *List[T]) Remove(v T) error {
	if l == nil || l.head == nil {
		return ErrNotFound
	}
	if l.head.value == v {
		head := l.head
		l.head = head.next
		head.next = nil
		l.length--
		return nil
	}
	for n := l.head; n.next != nil; n = n.next {
		if n.next.value == v {
			unlinked := n.next
			n.next = unlinked.next
			unlinked.next = nil
			l.length--
			return nil
		}
	}
	return ErrNotFound
}

// Each visits all values in list order.
//
// The callback receives each value and its zero-based list position.
// Iteration stops at the first callback error and returns that error to the
// caller.
func (l *List[T]) Each(f func(v T, pos int) error) error {
	pos := 0
	for v := range l.Values() {
		if err := f(v, pos); err != nil {
			return err
		}
		pos++
	}
	return nil
}

// String returns a debugging representation of the list.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List(")
	first := true
	for v := range l.Values() {
		if !first {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%v", v)
		first = false
	}
	b.WriteString(")")
	return b.String()
}
