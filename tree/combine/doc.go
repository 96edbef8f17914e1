// Package combine implements a depth-bounded combinator over pairs of
// nested mappings, together with the two instantiations that cover the
// common cases: Merge and Diff.
//
// Combine walks the first operand's keys, pairing each value with the
// value under the same key in the second operand (or tree.Sentinel when
// absent) and handing the pair to a per-leaf combinator. Where both sides
// hold nested mappings and the depth bound allows, the walk descends
// instead. With Options.Symmetric set, keys exclusive to the second
// operand are visited as well.
//
//	left, _ := codec.Load(a)
//	right, _ := codec.Load(b)
//	merged := combine.Merge(left, right)
//	delta := combine.Diff(left, right, combine.DefaultOptions())
//
// The engine never mutates its inputs and builds its result iteratively on
// an explicit frame stack, so operands nested thousands of levels deep are
// combined without call-stack growth.
package combine
