package collect

import (
	"errors"
	"slices"
	"testing"
)

func accessAll[T comparable](f *Favorites[T], values ...T) {
	for _, v := range values {
		f.Access(v)
	}
}

func TestFavoritesSortedByCount(t *testing.T) {
	f := NewFavorites[string]()
	accessAll(f, "python", "go", "python", "python", "go", "rust")
	var order []string
	var counts []int
	for v, cnt := range f.All() {
		order = append(order, v)
		counts = append(counts, cnt)
	}
	if !slices.Equal(order, []string{"python", "go", "rust"}) {
		t.Errorf("expected count order [python go rust], got %v", order)
	}
	if !slices.Equal(counts, []int{3, 2, 1}) {
		t.Errorf("expected counts [3 2 1], got %v", counts)
	}
	if f.Count("go") != 2 || f.Count("absent") != 0 {
		t.Errorf("Count gives wrong answers")
	}
}

func TestFavoritesTop(t *testing.T) {
	f := NewFavorites[int]()
	accessAll(f, 5, 5, 5, 5, 9, 9, 9, 7, 7, 3)
	top, err := f.Top(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slices.Collect(top); !slices.Equal(got, []int{5, 9}) {
		t.Errorf("expected top [5 9], got %v", got)
	}
	if _, err := f.Top(5); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for k > Len, got %v", err)
	}
	if _, err := f.Top(0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for k = 0, got %v", err)
	}
}

func TestFavoritesRemove(t *testing.T) {
	f := NewFavorites[int]()
	accessAll(f, 1, 2, 2)
	if !f.Remove(1) {
		t.Errorf("expected removal of tracked value to succeed")
	}
	if f.Remove(42) {
		t.Errorf("expected removal of untracked value to be a no-op")
	}
	if f.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", f.Len())
	}
}

func TestFavoritesMTFOrder(t *testing.T) {
	f := NewFavoritesMTF[string]()
	accessAll(f, "python", "go", "python", "python")
	// most recently accessed value sits at the front
	var order []string
	for v := range keysOf(f.All()) {
		order = append(order, v)
	}
	if !slices.Equal(order, []string{"python", "go"}) {
		t.Errorf("expected MTF order [python go], got %v", order)
	}
	f.Access("go")
	order = order[:0]
	for v := range keysOf(f.All()) {
		order = append(order, v)
	}
	if !slices.Equal(order, []string{"go", "python"}) {
		t.Errorf("expected MTF order [go python], got %v", order)
	}
}

func TestFavoritesMTFTopSearchesCounts(t *testing.T) {
	f := NewFavoritesMTF[int]()
	accessAll(f, 5, 5, 5, 9, 9, 3, 9, 5)
	// list order is access order, Top must still deliver by counts
	top, err := f.Top(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slices.Collect(top); !slices.Equal(got, []int{5, 9}) {
		t.Errorf("expected top [5 9], got %v", got)
	}
}

func keysOf[K, V any](seq func(yield func(K, V) bool)) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		seq(func(k K, _ V) bool {
			return yield(k)
		})
	}
}
