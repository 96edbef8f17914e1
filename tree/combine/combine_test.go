package combine

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/internal/testutil"
	"github.com/joshuapare/treekit/tree"
)

// call captures one combinator invocation.
type call struct {
	path   tree.Path[string]
	v0, v1 any
}

func recording(calls *[]call) Combinator[string] {
	return func(path tree.Path[string], v0, v1 any) (any, error) {
		*calls = append(*calls, call{path: slices.Clone(path), v0: v0, v1: v1})
		if tree.IsSentinel(v0) {
			return v1, nil
		}
		return v0, nil
	}
}

func TestCombineNilCombinator(t *testing.T) {
	d := tree.NewOrdered[string]()
	_, err := Combine[string](d, d, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilCombinator)
}

func TestCombineVisitsLeftKeysThenRightOnlyKeys(t *testing.T) {
	d0 := testutil.Tree(map[string]any{"a": 1, "b": 2})
	d1 := testutil.Tree(map[string]any{"b": 20, "c": 30})

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, calls, 3)
	assert.Equal(t, tree.Path[string]{"a"}, calls[0].path)
	assert.Equal(t, 1, calls[0].v0)
	assert.True(t, tree.IsSentinel(calls[0].v1))

	assert.Equal(t, tree.Path[string]{"b"}, calls[1].path)
	assert.Equal(t, 2, calls[1].v0)
	assert.Equal(t, 20, calls[1].v1)

	// c exists only on the right and is visited last, with v0 absent.
	assert.Equal(t, tree.Path[string]{"c"}, calls[2].path)
	assert.True(t, tree.IsSentinel(calls[2].v0))
	assert.Equal(t, 30, calls[2].v1)
}

func TestCombineAsymmetricSkipsRightOnlyKeys(t *testing.T) {
	d0 := testutil.Tree(map[string]any{"a": 1})
	d1 := testutil.Tree(map[string]any{"a": 10, "c": 30})

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), Options{Depth: tree.Unbounded})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, tree.Path[string]{"a"}, calls[0].path)
}

func TestCombinePassesFullPaths(t *testing.T) {
	d0 := testutil.Tree(map[string]any{
		"top": map[string]any{"mid": map[string]any{"leaf": 1}},
	})
	d1 := testutil.Tree(map[string]any{
		"top": map[string]any{"mid": map[string]any{"leaf": 2}},
	})

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, tree.Path[string]{"top", "mid", "leaf"}, calls[0].path)
}

func TestCombineDepthZeroNeverRecurses(t *testing.T) {
	d0 := testutil.Tree(map[string]any{"a": map[string]any{"x": 1}})
	d1 := testutil.Tree(map[string]any{"a": map[string]any{"x": 2}})

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), Options{Depth: 0, Symmetric: true})
	require.NoError(t, err)

	// The nested mappings are handed to the combinator as opaque leaves.
	require.Len(t, calls, 1)
	assert.Equal(t, tree.Path[string]{"a"}, calls[0].path)
	_, ok := calls[0].v0.(tree.Map[string])
	assert.True(t, ok)
}

func TestCombineDepthOne(t *testing.T) {
	d0 := testutil.Tree(map[string]any{
		"a": map[string]any{"x": map[string]any{"deep": 1}},
	})
	d1 := testutil.Tree(map[string]any{
		"a": map[string]any{"x": map[string]any{"deep": 2}},
	})

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), Options{Depth: 1, Symmetric: true})
	require.NoError(t, err)

	// One recursion into a, then x is a leaf.
	require.Len(t, calls, 1)
	assert.Equal(t, tree.Path[string]{"a", "x"}, calls[0].path)
	_, ok := calls[0].v0.(tree.Map[string])
	assert.True(t, ok)
}

func TestCombineOmitsEmptySubresults(t *testing.T) {
	d0 := testutil.Tree(map[string]any{
		"same": map[string]any{"x": 1},
		"diff": 1,
	})
	d1 := testutil.Tree(map[string]any{
		"same": map[string]any{"x": 1},
		"diff": 2,
	})

	got := Diff[string](d0, d1, DefaultOptions())
	// The recursive result under "same" is empty and must not appear as
	// an empty mapping.
	assert.False(t, tree.Has[string](got, "same"))
	assert.True(t, tree.Has[string](got, "diff"))
	assert.Equal(t, 1, got.Len())
}

func TestCombineDoesNotMutateInputs(t *testing.T) {
	d0 := testutil.Tree(map[string]any{"a": 1, "n": map[string]any{"x": 1}})
	d1 := testutil.Tree(map[string]any{"a": 2, "n": map[string]any{"y": 2}})
	want0 := testutil.Native(d0)
	want1 := testutil.Native(d1)

	_ = Merge[string](d0, d1)
	_ = Diff[string](d0, d1, DefaultOptions())

	assert.Equal(t, want0, testutil.Native(d0))
	assert.Equal(t, want1, testutil.Native(d1))
}

func TestCombineResultKindFollowsLeftOperand(t *testing.T) {
	d0 := tree.NewOrdered[string]()
	d0.Set("a", 1)
	d1 := tree.NewHash[string]()
	d1.Set("b", 2)

	got, err := Combine[string](d0, d1, recording(new([]call)), DefaultOptions())
	require.NoError(t, err)
	_, ok := got.(*tree.Ordered[string])
	assert.True(t, ok)
}

func TestCombineErrorDiscardsResult(t *testing.T) {
	d0 := testutil.Tree(map[string]any{"a": 1, "b": 2, "c": 3})
	d1 := testutil.Tree(map[string]any{})

	boom := errors.New("boom")
	n := 0
	fn := func(path tree.Path[string], v0, v1 any) (any, error) {
		n++
		if n == 2 {
			return nil, boom
		}
		return v0, nil
	}

	got, err := Combine[string](d0, d1, fn, DefaultOptions())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got, "no partial result may leak on combinator failure")
}

func TestCombineDeterministicWithOrderedOperands(t *testing.T) {
	d0 := tree.NewOrdered[string]()
	d0.Set("z", 1)
	d0.Set("a", 2)
	d1 := tree.NewOrdered[string]()
	d1.Set("m", 3)

	got, err := Combine[string](d0, d1, recording(new([]call)), DefaultOptions())
	require.NoError(t, err)
	// d0's keys in native order, then d1-exclusive keys.
	assert.Equal(t, []string{"z", "a", "m"}, got.Keys())
}

// Combining two chains nested 10k levels deep exercises the explicit
// frame stack; native recursion would overflow long before that.
func TestCombineDeepChains(t *testing.T) {
	const depth = 10000
	d0, path := testutil.Chain(depth, "left")
	d1, _ := testutil.Chain(depth, "right")

	got := Merge[string](d0, d1)
	v, err := tree.Get[string](got, path...)
	require.NoError(t, err)
	assert.Equal(t, "right", v)

	delta := Diff[string](d0, d1, DefaultOptions())
	v, err = tree.Get[string](delta, path...)
	require.NoError(t, err)
	assert.Equal(t, Pair{Left: "left", Right: "right"}, v)
}

func TestCombineDeepChainDepthBound(t *testing.T) {
	d0, _ := testutil.Chain(100, "left")
	d1, _ := testutil.Chain(100, "right")

	var calls []call
	_, err := Combine[string](d0, d1, recording(&calls), Options{Depth: 5, Symmetric: true})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Len(t, calls[0].path, 6, "recursion stops after five descents")
	for i := range calls[0].path {
		assert.Equal(t, "k"+strconv.Itoa(i), calls[0].path[i])
	}
}
