package collect

import "iter"

// Ring is a FIFO queue over a circularly linked list.
//
// Only the tail node is anchored; the head is tail.next. Besides the usual
// queue operations the circular structure supports Rotate, which moves the
// front value to the back without allocating, making Ring a natural fit for
// round-robin scheduling.
//
// The zero value is an empty ring, ready to use.
type Ring[T any] struct {
	tail   *snode[T]
	length int
}

// Len returns the number of values in the ring.
func (r *Ring[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.length
}

// IsEmpty reports whether the ring holds no values.
func (r *Ring[T]) IsEmpty() bool {
	return r.Len() == 0
}

// Enqueue places v at the back of the ring. O(1).
func (r *Ring[T]) Enqueue(v T) {
	n := &snode[T]{value: v}
	if r.tail == nil {
		n.next = n // a single node links to itself
	} else {
		n.next = r.tail.next
		r.tail.next = n
	}
	r.tail = n
	r.length++
}

// Peek returns the value at the front of the ring without removing it.
// An empty ring signals ErrEmpty.
func (r *Ring[T]) Peek() (T, error) {
	if r == nil || r.tail == nil {
		var void T
		return void, ErrEmpty
	}
	return r.tail.next.value, nil
}

// Dequeue removes and returns the value at the front of the ring.
// An empty ring signals ErrEmpty.
func (r *Ring[T]) Dequeue() (T, error) {
	if r == nil || r.tail == nil {
		var void T
		return void, ErrEmpty
	}
	head := r.tail.next
	if head == r.tail {
		r.tail = nil
	} else {
		r.tail.next = head.next
	}
	head.next = nil
	r.length--
	return head.value, nil
}

// Rotate moves the front value to the back of the ring. O(1), no
// allocation: only the tail anchor advances.
func (r *Ring[T]) Rotate() {
	if r == nil || r.tail == nil {
		return
	}
	r.tail = r.tail.next
}

// Clear removes all values from the ring.
func (r *Ring[T]) Clear() {
	if r == nil {
		return
	}
	if r.tail != nil {
		r.tail.next = nil // break the cycle for the garbage collector
	}
	r.tail = nil
	r.length = 0
}

// All returns an iterator over all values from front to back.
//
// The sequence visits each value exactly once, stopping after one full
// revolution.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r == nil || r.tail == nil {
			return
		}
		n := r.tail.next
		for n != r.tail {
			if !yield(n.value) {
				return
			}
			n = n.next
		}
		yield(n.value)
	}
}
