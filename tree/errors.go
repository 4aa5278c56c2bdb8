package tree

import "errors"

var (
	// ErrNotFound signals a search for a value the tree does not hold.
	ErrNotFound = errors.New("tree: value not found")
	// ErrInvalidPosition signals a position of a foreign tree or one whose
	// node has already been removed.
	ErrInvalidPosition = errors.New("tree: invalid position")
	// ErrNonEmptyTree signals adding a root to a tree which already has one.
	ErrNonEmptyTree = errors.New("tree: tree already has a root")
	// ErrChildExists signals adding a child to an occupied child slot.
	ErrChildExists = errors.New("tree: child slot is occupied")
	// ErrTwoChildren signals removing a position with two children.
	ErrTwoChildren = errors.New("tree: cannot remove a position with two children")
	// ErrInternalPosition signals attaching subtrees to a non-leaf position.
	ErrInternalPosition = errors.New("tree: cannot attach to an internal position")
	// ErrBadExpression signals malformed expression input or evaluation.
	ErrBadExpression = errors.New("tree: malformed expression")
	// ErrInvariantViolated signals a corrupted search tree structure.
	ErrInvariantViolated = errors.New("tree: search tree invariant violated")
)
