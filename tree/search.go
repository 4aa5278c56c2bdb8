package tree

import (
	"cmp"
	"iter"
)

// snode is the storage unit of Search.
type snode[T cmp.Ordered] struct {
	value T
	left  *snode[T]
	right *snode[T]
}

// Search is a binary search tree over ordered values.
//
// Insertion descends from the root: values smaller than a node go left,
// values greater or equal go right, so duplicates always descend into the
// right subtree. The tree does not balance itself; all operations run in
// O(h) with h the current height.
//
// A tree created by
//
//	Search[int]{}
//
// is a valid object and behaves like an empty tree.
type Search[T cmp.Ordered] struct {
	root *snode[T]
	size int
}

// Len returns the number of values in the tree.
func (t *Search[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Search[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 0 means empty and 1 means a sole
// root node.
func (t *Search[T]) Height() int {
	if t == nil {
		return 0
	}
	return searchHeight(t.root)
}

func searchHeight[T cmp.Ordered](n *snode[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(searchHeight(n.left), searchHeight(n.right))
}

// Insert places v in the tree. Duplicates of already present values go
// into the right subtree.
func (t *Search[T]) Insert(values ...T) {
	for _, v := range values {
		t.insertOne(v)
	}
}

func (t *Search[T]) insertOne(v T) {
	n := &snode[T]{value: v}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if v < cur.value {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Contains reports whether some node of the tree holds v.
func (t *Search[T]) Contains(v T) bool {
	if t == nil {
		return false
	}
	cur := t.root
	for cur != nil {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value in the tree, or false for an empty tree.
func (t *Search[T]) Min() (T, bool) {
	if t == nil || t.root == nil {
		var void T
		return void, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// Max returns the greatest value in the tree, or false for an empty tree.
func (t *Search[T]) Max() (T, bool) {
	if t == nil || t.root == nil {
		var void T
		return void, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// Remove deletes one node holding v from the tree.
//
// A node with two children is replaced by its in-order successor, the
// minimum of its right subtree. Remove signals ErrNotFound when the tree
// does not hold v; the tree is unchanged in that case.
func (t *Search[T]) Remove(v T) error {
	if t == nil || t.root == nil {
		return ErrNotFound
	}
	// find the node holding v and its parent
	var parent *snode[T]
	cur := t.root
	for cur != nil && cur.value != v {
		parent = cur
		if v < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return ErrNotFound
	}
	if cur.left != nil && cur.right != nil {
		// two children: promote the in-order successor's value, then
		// unlink the successor node instead
		succParent := cur
		succ := cur.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}
		cur.value = succ.value
		parent = succParent
		cur = succ
	}
	// cur now has at most one child
	child := cur.left
	if child == nil {
		child = cur.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
	cur.left, cur.right = nil, nil
	t.size--
	return nil
}

// InOrder returns an iterator over all values in ascending order.
//
// The walk is lazy: it uses an explicit stack of pending ancestors and
// descends only as far as the consumer pulls. The sequence is restartable.
func (t *Search[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		var stack []*snode[T]
		cur := t.root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.value) {
				return
			}
			cur = cur.right
		}
	}
}

// Check validates the search tree invariants: the in-order walk must yield
// a non-decreasing sequence and visit exactly Len() nodes. A violation
// indicates a tree implementation bug, not an input error.
func (t *Search[T]) Check() error {
	if t == nil {
		return nil
	}
	count := 0
	var prev T
	for v := range t.InOrder() {
		if count > 0 && v < prev {
			return ErrInvariantViolated
		}
		prev = v
		count++
	}
	if count != t.size {
		return ErrInvariantViolated
	}
	return nil
}
