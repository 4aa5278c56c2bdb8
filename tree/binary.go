package tree

// bnode is the storage unit of Binary. A node flagged as removed is no
// longer part of any tree; positions referring to it are rejected.
type bnode[T any] struct {
	value   T
	parent  *bnode[T]
	left    *bnode[T]
	right   *bnode[T]
	removed bool
}

// Pos addresses a value within a Binary tree.
//
// Positions stay valid across edits elsewhere in the tree; removing the
// node at a position invalidates that position. Tree operations reject
// invalidated or foreign positions with ErrInvalidPosition.
//
// The zero Pos is not located anywhere; Located reports this.
type Pos[T any] struct {
	tree *Binary[T]
	node *bnode[T]
}

// Located reports whether the position addresses a node of some tree.
func (p Pos[T]) Located() bool {
	return p.tree != nil && p.node != nil
}

// Value returns the value stored at this position.
func (p Pos[T]) Value() T {
	assert(p.Located(), "Value called on unlocated position")
	return p.node.value
}

// Parent returns the position of p's parent, or false if p is the root or
// has been invalidated.
func (p Pos[T]) Parent() (Pos[T], bool) {
	if !p.Located() || p.node.removed || p.node.parent == nil {
		return Pos[T]{}, false
	}
	return Pos[T]{tree: p.tree, node: p.node.parent}, true
}

// Left returns the position of p's left child, or false if absent.
func (p Pos[T]) Left() (Pos[T], bool) {
	if !p.Located() || p.node.removed || p.node.left == nil {
		return Pos[T]{}, false
	}
	return Pos[T]{tree: p.tree, node: p.node.left}, true
}

// Right returns the position of p's right child, or false if absent.
func (p Pos[T]) Right() (Pos[T], bool) {
	if !p.Located() || p.node.removed || p.node.right == nil {
		return Pos[T]{}, false
	}
	return Pos[T]{tree: p.tree, node: p.node.right}, true
}

// Binary is a positional binary tree.
//
// Every node holds a value and owns up to two children. The tree structure
// is shaped explicitly by the client through AddRoot, AddLeft, AddRight,
// Remove and Attach; traversal order is the client's business too (see
// Tour and the derived iterators).
//
// The zero value is an empty tree, ready to use.
type Binary[T any] struct {
	root *bnode[T]
	size int
}

// validate returns the node at position p.
//
// The position must belong to this tree and its node must not have been
// removed, otherwise ErrInvalidPosition is returned.
func (t *Binary[T]) validate(p Pos[T]) (*bnode[T], error) {
	if p.tree != t || p.node == nil || p.node.removed {
		return nil, ErrInvalidPosition
	}
	return p.node, nil
}

// Len returns the number of values in the tree.
func (t *Binary[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Binary[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Root returns the root position, or false for an empty tree.
func (t *Binary[T]) Root() (Pos[T], bool) {
	if t == nil || t.root == nil {
		return Pos[T]{}, false
	}
	return Pos[T]{tree: t, node: t.root}, true
}

// NumChildren returns the number of children of the node at position p.
func (t *Binary[T]) NumChildren(p Pos[T]) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	count := 0
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}
	return count, nil
}

// IsLeaf reports whether the node at position p has no children.
func (t *Binary[T]) IsLeaf(p Pos[T]) (bool, error) {
	count, err := t.NumChildren(p)
	return count == 0, err
}

// AddRoot places v at the root of an empty tree and returns the root
// position. A non-empty tree signals ErrNonEmptyTree.
func (t *Binary[T]) AddRoot(v T) (Pos[T], error) {
	if t.root != nil {
		return Pos[T]{}, ErrNonEmptyTree
	}
	t.root = &bnode[T]{value: v}
	t.size = 1
	return Pos[T]{tree: t, node: t.root}, nil
}

// AddLeft creates a left child of p holding v and returns its position.
// An occupied left slot signals ErrChildExists.
func (t *Binary[T]) AddLeft(p Pos[T], v T) (Pos[T], error) {
	n, err := t.validate(p)
	if err != nil {
		return Pos[T]{}, err
	}
	if n.left != nil {
		return Pos[T]{}, ErrChildExists
	}
	n.left = &bnode[T]{value: v, parent: n}
	t.size++
	return Pos[T]{tree: t, node: n.left}, nil
}

// AddRight creates a right child of p holding v and returns its position.
// An occupied right slot signals ErrChildExists.
func (t *Binary[T]) AddRight(p Pos[T], v T) (Pos[T], error) {
	n, err := t.validate(p)
	if err != nil {
		return Pos[T]{}, err
	}
	if n.right != nil {
		return Pos[T]{}, ErrChildExists
	}
	n.right = &bnode[T]{value: v, parent: n}
	t.size++
	return Pos[T]{tree: t, node: n.right}, nil
}

// Set places v at position p and returns the value previously stored there.
func (t *Binary[T]) Set(p Pos[T], v T) (T, error) {
	n, err := t.validate(p)
	if err != nil {
		var void T
		return void, err
	}
	old := n.value
	n.value = v
	return old, nil
}

// Remove deletes the node at position p and promotes its only child, if
// any, into its place.
//
// A node with two children cannot be removed this way; that signals
// ErrTwoChildren. The removed position is invalidated.
func (t *Binary[T]) Remove(p Pos[T]) (T, error) {
	n, err := t.validate(p)
	if err != nil {
		var void T
		return void, err
	}
	if n.left != nil && n.right != nil {
		var void T
		return void, ErrTwoChildren
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		t.root = child
	case n == n.parent.left:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	n.removed = true
	n.parent, n.left, n.right = nil, nil, nil
	t.size--
	return n.value, nil
}

// Attach grafts left and right as the left and right subtrees of the leaf
// at position p. Both donor trees are emptied as a side effect.
//
// Attaching to an internal node signals ErrInternalPosition.
func (t *Binary[T]) Attach(p Pos[T], left, right *Binary[T]) error {
	n, err := t.validate(p)
	if err != nil {
		return err
	}
	if n.left != nil || n.right != nil {
		return ErrInternalPosition
	}
	if left != nil && left.root != nil {
		left.root.parent = n
		n.left = left.root
		t.size += left.size
		left.root = nil
		left.size = 0
	}
	if right != nil && right.root != nil {
		right.root.parent = n
		n.right = right.root
		t.size += right.size
		right.root = nil
		right.size = 0
	}
	return nil
}

// Depth returns the number of ancestors of the node at position p.
func (t *Binary[T]) Depth(p Pos[T]) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	depth := 0
	for n.parent != nil {
		n = n.parent
		depth++
	}
	return depth, nil
}

// Height returns the height of the tree, where 0 means empty and 1 means
// a sole root node.
func (t *Binary[T]) Height() int {
	if t == nil {
		return 0
	}
	return subtreeHeight(t.root)
}

func subtreeHeight[T any](n *bnode[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}
