package array

import "iter"

// Array is a dynamic sequential container with bounds-checked access.
//
// Occupied slots form a dense prefix of the backing storage. The container
// grows by capacity doubling on demand and shrinks by halving once
// occupancy falls below a quarter, so Append runs in amortized O(1).
//
// The zero value is an empty array, ready to use.
type Array[T any] struct {
	slots  []T // backing storage; len(slots) is the capacity
	length int // number of occupied slots
}

// Len returns the number of elements stored in the array.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the current capacity of the backing storage.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Get returns the element at index i.
// Indices outside [0, Len()) signal ErrIndexOutOfBounds.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.Len() {
		var void T
		return void, ErrIndexOutOfBounds
	}
	return a.slots[i], nil
}

// Set places v at index i and returns the element previously stored there.
// Indices outside [0, Len()) signal ErrIndexOutOfBounds.
func (a *Array[T]) Set(i int, v T) (T, error) {
	if i < 0 || i >= a.Len() {
		var void T
		return void, ErrIndexOutOfBounds
	}
	old := a.slots[i]
	a.slots[i] = v
	return old, nil
}

// Append adds v after the last element. Amortized O(1).
func (a *Array[T]) Append(v T) {
	err := a.InsertAt(a.Len(), v)
	assert(err == nil, "append index is always in bounds")
}

// InsertAt inserts v at index i and shifts subsequent elements rightward.
// Valid indices are [0, Len()]; others signal ErrIndexOutOfBounds.
func (a *Array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.length {
		return ErrIndexOutOfBounds
	}
	if a.length == len(a.slots) {
		a.resize(max(1, 2*len(a.slots)))
	}
	copy(a.slots[i+1:a.length+1], a.slots[i:a.length])
	a.slots[i] = v
	a.length++
	return nil
}

// RemoveAt removes and returns the element at index i, shifting subsequent
// elements leftward. Indices outside [0, Len()) signal ErrIndexOutOfBounds.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= a.length {
		var void T
		return void, ErrIndexOutOfBounds
	}
	removed := a.slots[i]
	copy(a.slots[i:a.length-1], a.slots[i+1:a.length])
	var void T
	a.slots[a.length-1] = void // release the vacated slot
	a.length--
	if cap := len(a.slots); cap > 1 && a.length < cap/4 {
		a.resize(cap / 2)
	}
	return removed, nil
}

// resize reallocates the backing storage to capacity c.
func (a *Array[T]) resize(c int) {
	assert(c >= a.length, "resize capacity must hold all elements")
	slots := make([]T, c)
	copy(slots, a.slots[:a.length])
	a.slots = slots
}

// Values returns an iterator over all elements in index order.
//
// The sequence is lazy and restartable.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < a.length; i++ {
			if !yield(a.slots[i]) {
				return
			}
		}
	}
}

// Remove removes the first occurrence of v from a, shifting subsequent
// elements leftward. It signals ErrNotFound when no element equals v.
func Remove[T comparable](a *Array[T], v T) error {
	for i := 0; i < a.Len(); i++ {
		if a.slots[i] == v {
			_, err := a.RemoveAt(i)
			return err
		}
	}
	return ErrNotFound
}
