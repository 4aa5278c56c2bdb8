package collect

import "iter"

// Stack is a LIFO adapter over a singly linked head.
//
// All operations run in O(1). The zero value is an empty stack, ready to use.
type Stack[T any] struct {
	top    *snode[T]
	length int
}

type snode[T any] struct {
	value T
	next  *snode[T]
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.top = &snode[T]{value: v, next: s.top}
	s.length++
}

// Top returns the value on top of the stack without removing it.
// An empty stack signals ErrEmpty.
func (s *Stack[T]) Top() (T, error) {
	if s == nil || s.top == nil {
		var void T
		return void, ErrEmpty
	}
	return s.top.value, nil
}

// Pop removes and returns the value on top of the stack.
// An empty stack signals ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	if s == nil || s.top == nil {
		var void T
		return void, ErrEmpty
	}
	popped := s.top
	s.top = popped.next
	popped.next = nil
	s.length--
	return popped.value, nil
}

// All returns an iterator over all values from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for n := s.top; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
