package combine

import (
	"errors"

	"github.com/joshuapare/treekit/tree"
)

// ErrNilCombinator indicates Combine was called without a combinator.
var ErrNilCombinator = errors.New("combine: nil combinator")

// Combinator is called once per leaf-level key pair during a combine walk.
// path is the full key sequence from the root to and including the current
// key; it is reused between calls and only valid for the duration of the
// call. v0 and v1 are the values under that key in each operand, with
// tree.Sentinel standing in for an absent key.
//
// Returning tree.Sentinel omits the key from the output. Returning a
// non-nil error aborts the walk; the partially built result is discarded.
type Combinator[K comparable] func(path tree.Path[K], v0, v1 any) (any, error)

// initialStackCapacity pre-sizes the frame stack for typical nesting.
const initialStackCapacity = 16

// frame holds the traversal state for one nesting level: the operand pair,
// the pending keys, and the partially built result for this level.
type frame[K comparable] struct {
	d0, d1 tree.Map[K]
	keys   []K // d0's keys, then d1-exclusive keys when symmetric
	n0     int // number of leading keys that came from d0
	idx    int
	out    tree.Map[K]
	key    K // key in the parent under which out attaches
}

func newFrame[K comparable](d0, d1 tree.Map[K], symmetric bool) frame[K] {
	keys := d0.Keys()
	n0 := len(keys)
	if symmetric {
		for _, k := range d1.Keys() {
			if _, ok := d0.Get(k); !ok {
				keys = append(keys, k)
			}
		}
	}
	return frame[K]{
		d0:   d0,
		d1:   d1,
		keys: keys,
		n0:   n0,
		out:  d0.Empty(),
	}
}

// Combine produces a new nested mapping from d0 and d1 by applying fn at
// every leaf-level key pair. The walk visits d0's keys in their native
// order; for each key it pairs d0's value with d1's value under the same
// key (tree.Sentinel when absent). When both values are mappings and
// opts.Depth allows, the walk descends and the combined sub-mapping is
// attached only if non-empty. With opts.Symmetric set, keys exclusive to
// d1 are visited afterwards with tree.Sentinel as v0.
//
// The result's concrete mapping type follows d0 (via Empty), inputs are
// never mutated, and sub-mappings present on only one side are shared with
// the inputs rather than copied. On combinator error the in-progress
// result is discarded and nil is returned.
func Combine[K comparable](d0, d1 tree.Map[K], fn Combinator[K], opts Options) (tree.Map[K], error) {
	if fn == nil {
		return nil, ErrNilCombinator
	}
	stack := make([]frame[K], 1, initialStackCapacity)
	stack[0] = newFrame(d0, d1, opts.Symmetric)
	path := make(tree.Path[K], 0, initialStackCapacity)
	for {
		f := &stack[len(stack)-1]
		if f.idx >= len(f.keys) {
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return done.out, nil
			}
			path = path[:len(path)-1]
			if done.out.Len() > 0 {
				parent := &stack[len(stack)-1]
				parent.out.Set(done.key, done.out)
			}
			continue
		}
		k := f.keys[f.idx]
		fromD0 := f.idx < f.n0
		f.idx++
		path = append(path, k)

		var v0, v1 any = tree.Sentinel, tree.Sentinel
		if fromD0 {
			v0, _ = f.d0.Get(k)
			if v, ok := f.d1.Get(k); ok {
				v1 = v
			}
			m0, ok0 := v0.(tree.Map[K])
			m1, ok1 := v1.(tree.Map[K])
			if ok0 && ok1 && (opts.Depth < 0 || len(path)-1 < opts.Depth) {
				// Push a child frame instead of recursing; the current
				// key stays on the path until the child completes.
				child := newFrame(m0, m1, opts.Symmetric)
				child.key = k
				stack = append(stack, child)
				continue
			}
		} else {
			// Key exclusive to d1: v0 is necessarily absent, so there is
			// no mapping pair to descend into.
			v1, _ = f.d1.Get(k)
		}

		v, err := fn(path, v0, v1)
		if err != nil {
			return nil, err
		}
		if !tree.IsSentinel(v) {
			f.out.Set(k, v)
		}
		path = path[:len(path)-1]
	}
}
