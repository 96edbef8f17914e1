package combine

import "github.com/joshuapare/treekit/tree"

// Options configures a combine walk.
//
// The zero value is a shallow, asymmetric walk; use DefaultOptions for the
// unbounded symmetric defaults.
type Options struct {
	// Depth limits how many levels of nesting the walk descends. It
	// counts levels already descended, so 0 keeps the combinator at the
	// top level even when both values are mappings, and 1 descends once.
	// tree.Unbounded (or any negative value) lifts the limit.
	Depth int

	// Symmetric controls whether keys exclusive to the second operand are
	// visited. When false, the combinator only ever sees the first
	// operand's keys.
	Symmetric bool
}

// DefaultOptions returns the unbounded symmetric configuration, which is
// what Merge uses and what Diff callers usually want.
func DefaultOptions() Options {
	return Options{
		Depth:     tree.Unbounded,
		Symmetric: true,
	}
}
