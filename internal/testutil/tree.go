// Package testutil provides helpers for building and inspecting nested
// trees in tests.
package testutil

import (
	"sort"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/joshuapare/treekit/tree"
)

// Tree builds an insertion-ordered tree from nested native maps. Keys are
// inserted in sorted order so tests get deterministic iteration.
func Tree(src map[string]any) *tree.Ordered[string] {
	out := tree.NewOrdered[string]()
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if child, ok := src[k].(map[string]any); ok {
			out.Set(k, Tree(child))
			continue
		}
		out.Set(k, src[k])
	}
	return out
}

// Native converts a tree back into nested native maps so results can be
// compared structurally regardless of the mapping implementation.
func Native(d tree.Map[string]) map[string]any {
	out := make(map[string]any, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		if m, ok := v.(tree.Map[string]); ok {
			out[k] = Native(m)
			continue
		}
		out[k] = v
	}
	return out
}

// Dump pretty-prints a tree for test failure messages.
func Dump(d tree.Map[string]) string {
	return spew.Sdump(Native(d))
}

// Chain builds a tree holding a single value under a path of the given
// depth, keyed k0, k1, ... kN-1. Useful for deep-nesting tests.
func Chain(depth int, value any) (*tree.Ordered[string], tree.Path[string]) {
	path := make(tree.Path[string], depth)
	for i := range path {
		path[i] = "k" + strconv.Itoa(i)
	}
	d := tree.NewOrdered[string]()
	if _, err := tree.Set(d, value, path...); err != nil {
		panic(err)
	}
	return d, path
}
