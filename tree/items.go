package tree

import (
	"iter"
	"slices"
)

// initialStackCapacity pre-sizes the traversal stack; most trees are well
// under 16 levels deep, deeper ones just reallocate.
const initialStackCapacity = 16

// level is one frame of the iterative depth-first enumeration.
type level[K comparable] struct {
	m    Map[K]
	keys []K
	idx  int
}

// Items enumerates every leaf of d as a lazy depth-first sequence of
// path/value items. See ItemsDepth for the depth-bounded variant.
func Items[K comparable](d Map[K]) iter.Seq[Item[K]] {
	return ItemsDepth(d, Unbounded)
}

// ItemsDepth enumerates every leaf of d reachable within at most depth
// key-levels. A mapping sitting at exactly depth levels is yielded whole as
// the item's value; a depth of 0 therefore behaves like 1, since the
// top-level entries are always yielded. Enumeration follows each mapping's
// native key order, depth-first, and stops early when the consumer does.
//
// The sequence is single-use and must not be resumed after the underlying
// tree has been structurally modified. Each yielded Item carries its own
// copy of the path, so items may be retained.
//
// The traversal keeps an explicit frame stack instead of recursing, so
// trees nested thousands of levels deep are enumerated without call-stack
// growth.
func ItemsDepth[K comparable](d Map[K], depth int) iter.Seq[Item[K]] {
	return func(yield func(Item[K]) bool) {
		if d == nil {
			return
		}
		stack := make([]level[K], 1, initialStackCapacity)
		stack[0] = level[K]{m: d, keys: d.Keys()}
		path := make(Path[K], 0, initialStackCapacity)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.idx >= len(top.keys) {
				stack = stack[:len(stack)-1]
				if len(path) > 0 {
					path = path[:len(path)-1]
				}
				continue
			}
			k := top.keys[top.idx]
			top.idx++
			v, ok := top.m.Get(k)
			if !ok {
				// Key vanished between Keys() and Get; behavior under
				// concurrent modification is unspecified, skip it.
				continue
			}
			if m, isMap := v.(Map[K]); isMap && (depth < 0 || len(path)+1 < depth) {
				path = append(path, k)
				stack = append(stack, level[K]{m: m, keys: m.Keys()})
				continue
			}
			item := Item[K]{Path: append(slices.Clone(path), k), Value: v}
			if !yield(item) {
				return
			}
		}
	}
}

// Update applies a sequence of path/value items to d via Set and returns
// the first Set error, if any.
func Update[K comparable](d Map[K], items iter.Seq[Item[K]]) error {
	for it := range items {
		if _, err := Set(d, it.Value, it.Path...); err != nil {
			return err
		}
	}
	return nil
}

// New builds a fresh Hash tree from a sequence of path/value items.
func New[K comparable](items iter.Seq[Item[K]]) (Map[K], error) {
	d := NewHash[K]()
	if err := Update[K](d, items); err != nil {
		return nil, err
	}
	return d, nil
}

// Copy returns a structurally independent clone of d, of the same concrete
// kind. See CopyDepth for the depth-bounded variant.
func Copy[K comparable](d Map[K]) Map[K] {
	return CopyDepth(d, Unbounded)
}

// CopyDepth clones d down to depth levels by replaying ItemsDepth through
// Set. Values at or beyond the cutoff are shared by reference with the
// original, not deep-copied.
func CopyDepth[K comparable](d Map[K], depth int) Map[K] {
	clone := d.Empty()
	// Replay cannot fail: no yielded path is a prefix of another.
	_ = Update(clone, ItemsDepth(d, depth))
	return clone
}
