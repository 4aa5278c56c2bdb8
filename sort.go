package collect

import "cmp"

// InsertionSort sorts a positional list in place into non-decreasing order.
//
// The sort is stable and runs in O(n²) worst case, O(n) for an already
// sorted list. Values are relocated by unlinking and relinking nodes;
// positions of moved values are invalidated.
func InsertionSort[T cmp.Ordered](lst *PosList[T]) {
	if lst.Len() < 2 {
		return
	}
	marker, ok := lst.First()
	assert(ok, "insertion sort on non-empty list has a first position")
	for {
		last, ok := lst.Last()
		assert(ok, "insertion sort on non-empty list has a last position")
		if marker == last {
			return
		}
		pivot, ok := marker.Next()
		assert(ok, "marker is not last, so it has a successor")
		if marker.Value() <= pivot.Value() {
			marker = pivot // pivot value is already sorted
			continue
		}
		// walk left to the leftmost value greater than the pivot value
		walker := marker
		for {
			before, ok := walker.Prev()
			if !ok || before.Value() <= pivot.Value() {
				break
			}
			walker = before
		}
		v, err := lst.Remove(pivot)
		assert(err == nil, "pivot position is live")
		_, err = lst.AddBefore(walker, v)
		assert(err == nil, "walker position is live")
	}
}
