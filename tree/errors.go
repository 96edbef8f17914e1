package tree

import "errors"

var (
	// ErrKeyNotFound indicates a path element was absent and no default
	// was supplied. The wrapping error names the failing key.
	ErrKeyNotFound = errors.New("tree: key not found")

	// ErrNotAMap indicates an intermediate path element resolved to a
	// value that is not a mapping, so the walk could not descend.
	ErrNotAMap = errors.New("tree: value is not a mapping")

	// ErrEmptyPath indicates an operation that requires at least one key
	// was called with an empty path.
	ErrEmptyPath = errors.New("tree: empty path")

	// ErrNotComparable indicates Invert encountered a value that cannot
	// be used as a map key.
	ErrNotComparable = errors.New("tree: value is not comparable")
)
