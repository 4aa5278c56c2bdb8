package collect

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// favEntry pairs a value with its access count.
type favEntry[T comparable] struct {
	value T
	count int
}

// Favorites keeps track of how often values are accessed.
//
// Two ordering policies are available. The default list stays sorted by
// access count in non-increasing order, so Top is a simple prefix walk.
// The move-to-front variant (NewFavoritesMTF) instead moves each accessed
// value to the front, exploiting locality of reference; its list order is
// a heuristic and Top has to search for the k most counted values.
type Favorites[T comparable] struct {
	list PosList[favEntry[T]]
	mtf  bool
}

// NewFavorites creates an empty favorites list sorted by access counts.
func NewFavorites[T comparable]() *Favorites[T] {
	return &Favorites[T]{}
}

// NewFavoritesMTF creates an empty favorites list using the move-to-front
// heuristic.
func NewFavoritesMTF[T comparable]() *Favorites[T] {
	return &Favorites[T]{mtf: true}
}

// Len returns the number of distinct values accessed so far.
func (f *Favorites[T]) Len() int {
	if f == nil {
		return 0
	}
	return f.list.Len()
}

// IsEmpty reports whether no value has been accessed yet.
func (f *Favorites[T]) IsEmpty() bool {
	return f.Len() == 0
}

// find returns the position of the entry for v, or false if absent.
func (f *Favorites[T]) find(v T) (Position[favEntry[T]], bool) {
	for p := range f.list.Positions() {
		if p.Value().value == v {
			return p, true
		}
	}
	return Position[favEntry[T]]{}, false
}

// Access notes one access of v, creating an entry on first access.
func (f *Favorites[T]) Access(v T) {
	p, ok := f.find(v)
	if !ok {
		p = f.list.AddLast(favEntry[T]{value: v})
	}
	entry := p.Value()
	entry.count++
	_, err := f.list.Set(p, entry)
	assert(err == nil, "access position is live")
	f.moveUp(p)
}

// moveUp restores the ordering policy for the entry at position p.
func (f *Favorites[T]) moveUp(p Position[favEntry[T]]) {
	if f.mtf {
		if first, ok := f.list.First(); ok && first != p {
			entry, err := f.list.Remove(p)
			assert(err == nil, "accessed position is live")
			f.list.AddFirst(entry)
		}
		return
	}
	// shift the entry left past all entries with smaller counts
	entry := p.Value()
	walker := p
	moved := false
	for {
		before, ok := walker.Prev()
		if !ok || before.Value().count >= entry.count {
			break
		}
		walker = before
		moved = true
	}
	if moved {
		_, err := f.list.Remove(p)
		assert(err == nil, "accessed position is live")
		_, err = f.list.AddBefore(walker, entry)
		assert(err == nil, "walker position is live")
	}
}

// Remove drops the entry for v. Removing an untracked value is a no-op;
// the return value reports whether an entry was removed.
func (f *Favorites[T]) Remove(v T) bool {
	p, ok := f.find(v)
	if !ok {
		return false
	}
	_, err := f.list.Remove(p)
	assert(err == nil, "found position is live")
	return true
}

// Count returns the access count recorded for v.
func (f *Favorites[T]) Count(v T) int {
	if p, ok := f.find(v); ok {
		return p.Value().count
	}
	return 0
}

// All returns an iterator over all values with their access counts, in
// list order.
func (f *Favorites[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		if f == nil {
			return
		}
		for entry := range f.list.All() {
			if !yield(entry.value, entry.count) {
				return
			}
		}
	}
}

// Top returns an iterator over the k most accessed values, most counted
// first. It signals ErrIllegalArguments when k is outside [1, Len()].
func (f *Favorites[T]) Top(k int) (iter.Seq[T], error) {
	if k < 1 || k > f.Len() {
		return nil, ErrIllegalArguments
	}
	if !f.mtf {
		// list is sorted by counts, the top k values are a prefix
		return func(yield func(T) bool) {
			remaining := k
			for entry := range f.list.All() {
				if remaining == 0 || !yield(entry.value) {
					return
				}
				remaining--
			}
		}, nil
	}
	return f.topOfUnsorted(k), nil
}

// topOfUnsorted finds the k largest counts by repeatedly scanning a
// snapshot of the entries.
func (f *Favorites[T]) topOfUnsorted(k int) iter.Seq[T] {
	return func(yield func(T) bool) {
		clone := NewPosList[favEntry[T]]()
		for entry := range f.list.All() {
			clone.AddLast(entry)
		}
		for range k {
			highest, ok := clone.First()
			assert(ok, "snapshot holds at least k entries")
			for p := range clone.Positions() {
				if p.Value().count > highest.Value().count {
					highest = p
				}
			}
			entry, err := clone.Remove(highest)
			assert(err == nil, "highest position is live")
			if !yield(entry.value) {
				return
			}
		}
	}
}

// String returns a debugging representation of values and counts.
func (f *Favorites[T]) String() string {
	s := "["
	first := true
	for v, cnt := range f.All() {
		if !first {
			s += ", "
		}
		s += fmt.Sprintf("(%v, %d)", v, cnt)
		first = false
	}
	return s + "]"
}
