package watch

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
	panic("unreachable")
}

func TestWatchInsertEvents(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := NewList[string]()
	defer l.Close()
	events, ok := l.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription on an open list must succeed")
	}
	l.AddLast("a")
	l.AddFirst("b")
	ev := receive(t, events)
	if ev.Op != Insert || ev.Value != "a" {
		t.Errorf("expected insert of \"a\", got %v %q", ev.Op, ev.Value)
	}
	ev = receive(t, events)
	if ev.Op != Insert || ev.Value != "b" {
		t.Errorf("expected insert of \"b\", got %v %q", ev.Op, ev.Value)
	}
	got := slices.Collect(l.All())
	if !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("expected list [b a], got %v", got)
	}
}

func TestWatchSetAndRemoveEvents(t *testing.T) {
	l := NewList[int]()
	defer l.Close()
	p := l.AddLast(1)
	events, ok := l.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription on an open list must succeed")
	}
	if _, err := l.Set(p, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Remove(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := receive(t, events)
	if ev.Op != Set || ev.Value != 2 {
		t.Errorf("expected set of 2, got %v %d", ev.Op, ev.Value)
	}
	ev = receive(t, events)
	if ev.Op != Remove || ev.Value != 2 {
		t.Errorf("expected remove of 2, got %v %d", ev.Op, ev.Value)
	}
	if !l.IsEmpty() {
		t.Error("list must be empty after removal")
	}
}

func TestWatchFailedOpPublishesNothing(t *testing.T) {
	l := NewList[int]()
	defer l.Close()
	p := l.AddLast(1)
	if _, err := l.Remove(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events, ok := l.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription on an open list must succeed")
	}
	if _, err := l.Set(p, 9); err == nil { // invalidated position
		t.Fatal("expected an error for an invalidated position")
	}
	select {
	case ev := <-events:
		t.Errorf("failed operation must not publish, got %v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchCloseEndsSubscription(t *testing.T) {
	l := NewList[int]()
	events, ok := l.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription on an open list must succeed")
	}
	l.AddLast(1)
	receive(t, events)
	l.Close()
	select {
	case _, open := <-events:
		if open {
			t.Error("expected the event channel to close")
		}
	case <-time.After(time.Second):
		t.Error("timeout waiting for channel close")
	}
	if _, ok := l.Subscribe(context.Background()); ok {
		t.Error("subscription on a closed list must fail")
	}
}

func TestWatchMultipleSubscribers(t *testing.T) {
	l := NewList[int]()
	defer l.Close()
	a, _ := l.Subscribe(context.Background())
	b, _ := l.Subscribe(context.Background())
	l.AddLast(7)
	for _, events := range []<-chan Event[int]{a, b} {
		ev := receive(t, events)
		if ev.Op != Insert || ev.Value != 7 {
			t.Errorf("expected insert of 7, got %v %d", ev.Op, ev.Value)
		}
	}
}

func TestWatchOpString(t *testing.T) {
	if Insert.String() != "insert" || Remove.String() != "remove" || Set.String() != "set" {
		t.Error("operation names mismatch")
	}
	if Op(99).String() != "unknown" {
		t.Error("out-of-range operations must render as unknown")
	}
}
