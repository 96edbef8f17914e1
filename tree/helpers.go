package tree

import (
	"fmt"
	"reflect"
)

// Lookup returns the value for the first of keys that is present at the
// top level of d, failing with ErrKeyNotFound when none of them are.
func Lookup[K comparable](d Map[K], keys ...K) (any, error) {
	for _, k := range keys {
		if v, ok := d.Get(k); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: none of %v", ErrKeyNotFound, keys)
}

// LookupOr is Lookup with a fallback when none of the keys are present.
func LookupOr[K comparable](d Map[K], def any, keys ...K) any {
	v, err := Lookup(d, keys...)
	if err != nil {
		return def
	}
	return v
}

// Extract builds a mapping of the same kind as d holding only the named
// top-level keys. A missing key is an error unless skipMissing is set, in
// which case it is silently left out.
func Extract[K comparable](d Map[K], keys []K, skipMissing bool) (Map[K], error) {
	out := d.Empty()
	for _, k := range keys {
		v, ok := d.Get(k)
		if !ok {
			if skipMissing {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		out.Set(k, v)
	}
	return out, nil
}

// Invert produces a Hash inverting the top-level key/value relationship of
// d. When a value appears more than once, the key encountered last in d's
// iteration order wins. Values must be usable as map keys; a non-comparable
// value fails with ErrNotComparable.
func Invert[K comparable](d Map[K]) (Hash[any], error) {
	out := make(Hash[any], d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		if v != nil && !reflect.TypeOf(v).Comparable() {
			return nil, fmt.Errorf("%w: %T at key %v", ErrNotComparable, v, k)
		}
		out[v] = k
	}
	return out, nil
}
