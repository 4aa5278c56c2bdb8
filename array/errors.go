package array

import "errors"

var (
	// ErrIndexOutOfBounds signals an index outside the valid bounds of the array.
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")
	// ErrNotFound signals a search for a value the array does not hold.
	ErrNotFound = errors.New("array: value not found")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
