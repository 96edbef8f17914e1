package tree

import (
	"errors"
	"fmt"
)

// Get walks path key by key from the root d and returns the addressed
// value. It fails with ErrKeyNotFound at the first missing key, or with
// ErrNotAMap if an intermediate key holds a non-mapping value. An empty
// path returns d itself.
func Get[K comparable](d Map[K], path ...K) (any, error) {
	var cur any = d
	for _, k := range path {
		m, ok := cur.(Map[K])
		if !ok {
			return nil, fmt.Errorf("%w at key %v", ErrNotAMap, k)
		}
		v, ok := m.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		cur = v
	}
	return cur, nil
}

// GetOr is Get with a fallback: if the path does not resolve, def is
// returned instead of an error.
func GetOr[K comparable](d Map[K], def any, path ...K) any {
	v, err := Get(d, path...)
	if err != nil {
		return def
	}
	return v
}

// Has reports whether the full path resolves in d.
func Has[K comparable](d Map[K], path ...K) bool {
	_, err := Get(d, path...)
	return err == nil
}

// Set binds the last path element to value, creating missing intermediate
// mappings on the way. Created mappings are of the same concrete kind as d
// (via d.Empty()); once one intermediate has been freshly created, every
// deeper intermediate on this call is created as well, since no stale
// branch can exist below a fresh node. Returns value.
//
// Set fails with ErrEmptyPath when path is empty, and with ErrNotAMap when
// an existing intermediate key holds a non-mapping value.
func Set[K comparable](d Map[K], value any, path ...K) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	cur := d
	fresh := false
	for _, k := range path[:len(path)-1] {
		if !fresh {
			if v, ok := cur.Get(k); ok {
				m, isMap := v.(Map[K])
				if !isMap {
					return nil, fmt.Errorf("%w at key %v", ErrNotAMap, k)
				}
				cur = m
				continue
			}
			fresh = true
		}
		child := d.Empty()
		cur.Set(k, child)
		cur = child
	}
	cur.Set(path[len(path)-1], value)
	return value, nil
}

// SetDefault returns the value at path if it resolves; otherwise it stores
// def there (creating intermediates like Set) and returns def.
func SetDefault[K comparable](d Map[K], def any, path ...K) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	v, err := Get(d, path...)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}
	return Set(d, def, path...)
}

// Pop removes and returns the value at path. Missing keys fail with
// ErrKeyNotFound; intermediates holding non-mapping values fail with
// ErrNotAMap.
func Pop[K comparable](d Map[K], path ...K) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	parent, err := Get(d, path[:len(path)-1]...)
	if err != nil {
		return nil, err
	}
	last := path[len(path)-1]
	m, ok := parent.(Map[K])
	if !ok {
		return nil, fmt.Errorf("%w at key %v", ErrNotAMap, last)
	}
	v, ok := m.Get(last)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, last)
	}
	m.Delete(last)
	return v, nil
}

// PopOr is Pop with a fallback: if the path does not resolve, def is
// returned and nothing is removed.
func PopOr[K comparable](d Map[K], def any, path ...K) any {
	v, err := Pop(d, path...)
	if err != nil {
		return def
	}
	return v
}

// PopPath is Pop, followed by pruning: every intermediate mapping on the
// path that became empty as a result of the removal is deleted from its
// parent, walking from the innermost level outward and stopping at the
// first ancestor that still holds other entries. Ancestors above a
// non-empty one are never touched, even if empty for other reasons.
func PopPath[K comparable](d Map[K], path ...K) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	// chain[i] is the mapping at depth i; chain[0] is the root.
	chain := make([]Map[K], 1, len(path))
	chain[0] = d
	cur := d
	for _, k := range path[:len(path)-1] {
		v, ok := cur.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		m, isMap := v.(Map[K])
		if !isMap {
			return nil, fmt.Errorf("%w at key %v", ErrNotAMap, k)
		}
		chain = append(chain, m)
		cur = m
	}
	last := path[len(path)-1]
	v, ok := cur.Get(last)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, last)
	}
	cur.Delete(last)
	for i := len(chain) - 1; i >= 1; i-- {
		if chain[i].Len() != 0 {
			break
		}
		chain[i-1].Delete(path[i-1])
	}
	return v, nil
}

// PopPathOr is PopPath with a fallback: if the path does not resolve, def
// is returned and nothing is removed.
func PopPathOr[K comparable](d Map[K], def any, path ...K) any {
	v, err := PopPath(d, path...)
	if err != nil {
		return def
	}
	return v
}
