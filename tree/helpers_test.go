package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("b", 2)
	d.Set("c", 3)

	v, err := Lookup(d, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 2, v, "first present key wins")

	_, err = Lookup(d, "x", "y")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Equal(t, 2, LookupOr(d, -1, "a", "b"))
	assert.Equal(t, -1, LookupOr(d, -1, "x", "y"))
}

func TestExtract(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)

	out, err := Extract(d, []string{"c", "a"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, out.Keys(), "extraction keeps requested order")
	_, ok := out.(*Ordered[string])
	assert.True(t, ok, "result kind follows the source")

	_, err = Extract(d, []string{"a", "missing"}, false)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	out, err = Extract(d, []string{"a", "missing"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Keys())
}

func TestInvert(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("a", 1)
	d.Set("b", 2)

	inv, err := Invert(d)
	require.NoError(t, err)
	assert.Equal(t, Hash[any]{1: "a", 2: "b"}, inv)
}

func TestInvertLaterKeyWins(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("a", 1)
	d.Set("b", 1)

	inv, err := Invert(d)
	require.NoError(t, err)
	assert.Equal(t, Hash[any]{1: "b"}, inv)
}

func TestInvertNonComparable(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("a", []int{1, 2})

	_, err := Invert(d)
	assert.ErrorIs(t, err, ErrNotComparable)
}

func TestInvertNilValue(t *testing.T) {
	d := NewOrdered[string]()
	d.Set("a", nil)

	inv, err := Invert(d)
	require.NoError(t, err)
	assert.Equal(t, "a", inv[nil])
}
