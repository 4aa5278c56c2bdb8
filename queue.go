package collect

import "iter"

// Queue is a FIFO adapter over a singly linked list with a tail pointer.
//
// Enqueue and Dequeue both run in O(1). The zero value is an empty queue,
// ready to use.
type Queue[T any] struct {
	front  *snode[T]
	back   *snode[T]
	length int
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Enqueue places v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	n := &snode[T]{value: v}
	if q.back == nil {
		q.front = n
	} else {
		q.back.next = n
	}
	q.back = n
	q.length++
}

// Front returns the value at the front of the queue without removing it.
// An empty queue signals ErrEmpty.
func (q *Queue[T]) Front() (T, error) {
	if q == nil || q.front == nil {
		var void T
		return void, ErrEmpty
	}
	return q.front.value, nil
}

// Dequeue removes and returns the value at the front of the queue.
// An empty queue signals ErrEmpty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q == nil || q.front == nil {
		var void T
		return void, ErrEmpty
	}
	dequeued := q.front
	q.front = dequeued.next
	if q.front == nil {
		q.back = nil
	}
	dequeued.next = nil
	q.length--
	return dequeued.value, nil
}

// All returns an iterator over all values from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q == nil {
			return
		}
		for n := q.front; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
