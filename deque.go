package collect

import "iter"

// Deque is a double-ended queue over the doubly linked base of PosList.
//
// All operations run in O(1). The zero value is an empty deque, ready to use.
type Deque[T any] struct {
	list PosList[T]
}

// Len returns the number of values in the deque.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.list.Len()
}

// IsEmpty reports whether the deque holds no values.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// PushFront places v at the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.list.AddFirst(v)
}

// PushBack places v at the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.list.AddLast(v)
}

// Front returns the value at the front without removing it.
// An empty deque signals ErrEmpty.
func (d *Deque[T]) Front() (T, error) {
	p, ok := d.list.First()
	if !ok {
		var void T
		return void, ErrEmpty
	}
	return p.Value(), nil
}

// Back returns the value at the back without removing it.
// An empty deque signals ErrEmpty.
func (d *Deque[T]) Back() (T, error) {
	p, ok := d.list.Last()
	if !ok {
		var void T
		return void, ErrEmpty
	}
	return p.Value(), nil
}

// PopFront removes and returns the value at the front.
// An empty deque signals ErrEmpty.
func (d *Deque[T]) PopFront() (T, error) {
	p, ok := d.list.First()
	if !ok {
		var void T
		return void, ErrEmpty
	}
	return d.list.Remove(p)
}

// PopBack removes and returns the value at the back.
// An empty deque signals ErrEmpty.
func (d *Deque[T]) PopBack() (T, error) {
	p, ok := d.list.Last()
	if !ok {
		var void T
		return void, ErrEmpty
	}
	return d.list.Remove(p)
}

// All returns an iterator over all values from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	if d == nil {
		return func(yield func(T) bool) {}
	}
	return d.list.All()
}
