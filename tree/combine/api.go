package combine

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/treekit/tree"
)

// Pair holds the two differing values a symmetric diff reports for one
// key. For a key present on only one side, the other half is
// tree.Sentinel; that is the only place the sentinel ever surfaces in a
// result.
type Pair struct {
	Left  any
	Right any
}

// LeftOnly reports whether the key existed only in the first operand.
func (p Pair) LeftOnly() bool { return tree.IsSentinel(p.Right) }

// RightOnly reports whether the key existed only in the second operand.
func (p Pair) RightOnly() bool { return tree.IsSentinel(p.Left) }

func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// Merge overlays the given mappings left to right: later operands win at
// every leaf, nested mappings at matching keys are merged recursively, and
// keys unique to either side are preserved. With no operands the result is
// an empty tree.Hash; otherwise the result's concrete type follows the
// first operand.
func Merge[K comparable](ds ...tree.Map[K]) tree.Map[K] {
	return MergeDepth(tree.Unbounded, ds...)
}

// MergeDepth is Merge with a recursion bound. A depth of 0 overlays the
// operands shallowly, replacing nested mappings wholesale.
func MergeDepth[K comparable](depth int, ds ...tree.Map[K]) tree.Map[K] {
	var acc tree.Map[K]
	opts := Options{Depth: depth, Symmetric: true}
	for _, d := range ds {
		if d == nil {
			continue
		}
		if acc == nil {
			acc = d.Empty()
		}
		// mergeValue never returns an error.
		acc, _ = Combine(acc, d, mergeValue[K], opts)
	}
	if acc == nil {
		return tree.NewHash[K]()
	}
	return acc
}

// Diff reports where d0 and d1 disagree. With opts.Symmetric set, each
// differing key maps to a Pair of the two values and keys exclusive to
// either operand appear with the absent side marked; without it, each
// differing key maps to d0's value and keys exclusive to d1 are never
// visited. Equal subtrees are omitted entirely, so Diff of a mapping with
// itself is empty.
//
// Leaf equality is reflect.DeepEqual, which also covers mappings treated
// as opaque leaves at the depth bound.
func Diff[K comparable](d0, d1 tree.Map[K], opts Options) tree.Map[K] {
	fn := asymmetricDiffValue[K]
	if opts.Symmetric {
		fn = symmetricDiffValue[K]
	}
	// Neither diff combinator returns an error.
	d, _ := Combine(d0, d1, fn, opts)
	return d
}

// mergeValue keeps the first operand's value only where the second has
// none; otherwise the second wins.
func mergeValue[K comparable](_ tree.Path[K], v0, v1 any) (any, error) {
	if tree.IsSentinel(v1) {
		return v0, nil
	}
	return v1, nil
}

// asymmetricDiffValue reports the first operand's value where the two
// disagree.
func asymmetricDiffValue[K comparable](_ tree.Path[K], v0, v1 any) (any, error) {
	if reflect.DeepEqual(v0, v1) {
		return tree.Sentinel, nil
	}
	return v0, nil
}

// symmetricDiffValue reports both values where the two disagree.
func symmetricDiffValue[K comparable](_ tree.Path[K], v0, v1 any) (any, error) {
	if reflect.DeepEqual(v0, v1) {
		return tree.Sentinel, nil
	}
	return Pair{Left: v0, Right: v1}, nil
}
