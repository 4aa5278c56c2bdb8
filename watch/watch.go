package watch

import (
	"context"
	"iter"

	"github.com/guiguan/caster"
	"github.com/npillmayer/collect"
)

// Op enumerates the kinds of change events a watched list publishes.
type Op int

const (
	// Insert signals a value added to the list.
	Insert Op = iota
	// Remove signals a value removed from the list.
	Remove
	// Set signals a value replaced in place.
	Set
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Set:
		return "set"
	}
	return "unknown"
}

// Event describes one structural change of a watched list.
type Event[T any] struct {
	Op    Op
	Value T // the inserted, removed or newly set value
}

// List is a positional list broadcasting change events to subscribers.
//
// Mutating operations mirror collect.PosList and publish an Event after
// the structural change has been applied. The list itself remains
// single-threaded: only event delivery crosses goroutines.
type List[T any] struct {
	list *collect.PosList[T]
	cast *caster.Caster // broadcasts events to all subscribers
}

// NewList creates an empty watched list.
func NewList[T any]() *List[T] {
	return &List[T]{
		list: collect.NewPosList[T](),
		cast: caster.New(nil),
	}
}

// Close tears down the broadcaster. All subscriber channels are closed.
// The list stays usable, but further changes are no longer published.
func (l *List[T]) Close() {
	l.cast.Close()
}

// Subscribe registers a subscriber and returns its event channel.
//
// The channel is closed when ctx is canceled or the list is closed. A nil
// ctx subscribes for the lifetime of the list.
func (l *List[T]) Subscribe(ctx context.Context) (<-chan Event[T], bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-l.cast.Done(): // Sub would hand back a dead channel
		return nil, false
	default:
	}
	ch, ok := l.cast.Sub(ctx, 16)
	if !ok {
		return nil, false
	}
	out := make(chan Event[T], 16)
	go func() {
		defer close(out)
		for msg := range ch {
			ev, ok := msg.(Event[T])
			if !ok {
				tracer().Errorf("watch list: unexpected event type %T", msg)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				l.cast.Unsub(ch)
				return
			}
		}
	}()
	return out, true
}

func (l *List[T]) publish(op Op, v T) {
	l.cast.Pub(Event[T]{Op: op, Value: v})
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.list.Len()
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.list.IsEmpty()
}

// First returns the first position, or false for an empty list.
func (l *List[T]) First() (collect.Position[T], bool) {
	return l.list.First()
}

// Last returns the last position, or false for an empty list.
func (l *List[T]) Last() (collect.Position[T], bool) {
	return l.list.Last()
}

// AddFirst inserts v at the front and publishes an Insert event.
func (l *List[T]) AddFirst(v T) collect.Position[T] {
	p := l.list.AddFirst(v)
	l.publish(Insert, v)
	return p
}

// AddLast inserts v at the back and publishes an Insert event.
func (l *List[T]) AddLast(v T) collect.Position[T] {
	p := l.list.AddLast(v)
	l.publish(Insert, v)
	return p
}

// AddBefore inserts v just before position p and publishes an Insert
// event.
func (l *List[T]) AddBefore(p collect.Position[T], v T) (collect.Position[T], error) {
	np, err := l.list.AddBefore(p, v)
	if err != nil {
		return np, err
	}
	l.publish(Insert, v)
	return np, nil
}

// AddAfter inserts v just after position p and publishes an Insert event.
func (l *List[T]) AddAfter(p collect.Position[T], v T) (collect.Position[T], error) {
	np, err := l.list.AddAfter(p, v)
	if err != nil {
		return np, err
	}
	l.publish(Insert, v)
	return np, nil
}

// Set places v at position p and publishes a Set event carrying the new
// value.
func (l *List[T]) Set(p collect.Position[T], v T) (T, error) {
	old, err := l.list.Set(p, v)
	if err != nil {
		return old, err
	}
	l.publish(Set, v)
	return old, nil
}

// Remove unlinks the value at position p and publishes a Remove event
// carrying the removed value.
func (l *List[T]) Remove(p collect.Position[T]) (T, error) {
	v, err := l.list.Remove(p)
	if err != nil {
		return v, err
	}
	l.publish(Remove, v)
	return v, nil
}

// All returns an iterator over all values in list order.
func (l *List[T]) All() iter.Seq[T] {
	return l.list.All()
}
