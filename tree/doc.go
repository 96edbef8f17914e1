// Package tree provides path-addressed access to nested mappings: mappings
// whose values may themselves be mappings, forming a tree.
//
// All operations work through the [Map] capability interface, so any mapping
// implementation participates uniformly. Two implementations ship with the
// package: [Hash], a thin wrapper over a native Go map, and [Ordered], which
// preserves insertion order.
//
// Values are addressed by paths, ordered sequences of keys:
//
//	d := tree.NewOrdered[int]()
//	tree.Set(d, 3, 1, 2)    // d == {1: {2: 3}}
//	tree.Set(d, 6, 1, 5, 4) // d == {1: {2: 3, 5: {4: 6}}}
//	v, err := tree.Get(d, 1, 2)
//
// Write operations create missing intermediate mappings automatically, using
// the same concrete type as the root. [PopPath] prunes intermediate mappings
// that become empty after a removal.
//
// Traversal is iterative throughout; trees thousands of levels deep do not
// grow the call stack.
package tree
