package tree

import "iter"

// Tour performs an Euler tour of a binary tree.
//
// The tour walks around the tree, visiting each node three times: before
// its left subtree (Pre), between its subtrees (In) and after its right
// subtree (Post). Any hook may be nil. Pre- , in- and post-order
// processing all fall out of this one walk, as do computations passing
// results bottom-up: Post receives the results of both subtree tours and
// returns the result for the node.
//
// Hooks receive the node's depth and its path, the child indices (0 for
// left, 1 for right) leading from the root to the node. The right child is
// indexed 1 even when it has no left sibling. The path slice is reused
// across calls; hooks must copy it if they keep it.
type Tour[T, R any] struct {
	Pre  func(p Pos[T], depth int, path []int)
	In   func(p Pos[T], depth int, path []int)
	Post func(p Pos[T], depth int, path []int, left, right R) R
}

// Run performs the tour on t. It returns the root's Post result, or false
// for an empty tree.
func (tour Tour[T, R]) Run(t *Binary[T]) (R, bool) {
	root, ok := t.Root()
	if !ok {
		var void R
		return void, false
	}
	return tour.walk(root, 0, make([]int, 0, 8)), true
}

func (tour Tour[T, R]) walk(p Pos[T], depth int, path []int) R {
	if tour.Pre != nil {
		tour.Pre(p, depth, path)
	}
	var leftResult, rightResult R
	if left, ok := p.Left(); ok {
		leftResult = tour.walk(left, depth+1, append(path, 0))
	}
	if tour.In != nil {
		tour.In(p, depth, path)
	}
	if right, ok := p.Right(); ok {
		rightResult = tour.walk(right, depth+1, append(path, 1))
	}
	if tour.Post == nil {
		var void R
		return void
	}
	return tour.Post(p, depth, path, leftResult, rightResult)
}

// PreOrder returns an iterator visiting each value before the values of
// its subtrees.
func (t *Binary[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if root, ok := t.Root(); ok {
			preOrderWalk(root, yield)
		}
	}
}

func preOrderWalk[T any](p Pos[T], yield func(T) bool) bool {
	if !yield(p.Value()) {
		return false
	}
	if left, ok := p.Left(); ok && !preOrderWalk(left, yield) {
		return false
	}
	if right, ok := p.Right(); ok && !preOrderWalk(right, yield) {
		return false
	}
	return true
}

// InOrder returns an iterator visiting each value between the values of
// its left and right subtrees.
func (t *Binary[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if root, ok := t.Root(); ok {
			inOrderWalk(root, yield)
		}
	}
}

func inOrderWalk[T any](p Pos[T], yield func(T) bool) bool {
	if left, ok := p.Left(); ok && !inOrderWalk(left, yield) {
		return false
	}
	if !yield(p.Value()) {
		return false
	}
	if right, ok := p.Right(); ok && !inOrderWalk(right, yield) {
		return false
	}
	return true
}

// PostOrder returns an iterator visiting each value after the values of
// its subtrees.
func (t *Binary[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if root, ok := t.Root(); ok {
			postOrderWalk(root, yield)
		}
	}
}

func postOrderWalk[T any](p Pos[T], yield func(T) bool) bool {
	if left, ok := p.Left(); ok && !postOrderWalk(left, yield) {
		return false
	}
	if right, ok := p.Right(); ok && !postOrderWalk(right, yield) {
		return false
	}
	return yield(p.Value())
}

// Layout computes planar coordinates for all nodes of a binary tree: the
// x coordinate is the node's in-order rank, the y coordinate its depth.
func Layout[T any](t *Binary[T]) map[Pos[T]][2]int {
	coords := make(map[Pos[T]][2]int, t.Len())
	count := 0
	tour := Tour[T, struct{}]{
		In: func(p Pos[T], depth int, path []int) {
			coords[p] = [2]int{count, depth}
			count++
		},
	}
	tour.Run(t)
	return coords
}
