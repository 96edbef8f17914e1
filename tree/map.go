package tree

// Map is the capability interface nested structures are built from. Any type
// that supports keyed lookup, assignment, deletion, and can construct an
// empty sibling of its own kind participates in every algorithm in this
// module; nested-mapping detection is a type assertion to Map, not a
// concrete-type check.
type Map[K comparable] interface {
	// Get returns the value stored under key, and whether it was present.
	Get(key K) (any, bool)

	// Set binds key to value, replacing any existing binding.
	Set(key K, value any)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key K)

	// Len reports the number of keys in the mapping.
	Len() int

	// Keys returns the keys as a fresh slice, in the mapping's native
	// iteration order. Callers may keep or modify the slice.
	Keys() []K

	// Empty returns a new empty mapping of the same concrete kind. Write
	// operations use it to materialize intermediate and result mappings,
	// so a caller supplying a specialized mapping gets that same behavior
	// for generated sub-mappings.
	Empty() Map[K]
}

// Path is an ordered sequence of keys locating a value within a nested
// mapping. The last element addresses a value; all preceding elements
// address intermediate mappings.
type Path[K comparable] []K

// Item is a single entry of a depth-first enumeration: the path to a leaf
// and the value found there.
type Item[K comparable] struct {
	Path  Path[K]
	Value any
}

// Unbounded lifts a depth limit. Depth arguments count levels of nesting
// already descended, so a depth of 0 keeps every operation at the top level.
const Unbounded = -1

// Hash is a Map backed by a native Go map. Iteration order is unspecified,
// as for any Go map. The zero value is not usable; construct with NewHash
// or a literal.
type Hash[K comparable] map[K]any

// NewHash returns a new empty Hash.
func NewHash[K comparable]() Hash[K] { return make(Hash[K]) }

func (h Hash[K]) Get(key K) (any, bool) {
	v, ok := h[key]
	return v, ok
}

func (h Hash[K]) Set(key K, value any) { h[key] = value }

func (h Hash[K]) Delete(key K) { delete(h, key) }

func (h Hash[K]) Len() int { return len(h) }

func (h Hash[K]) Keys() []K {
	keys := make([]K, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

func (h Hash[K]) Empty() Map[K] { return make(Hash[K]) }

// entry is one key/value slot in an Ordered mapping.
type entry[K comparable] struct {
	key   K
	value any
}

// Ordered is a Map that preserves insertion order. It combines an ordered
// entry slice with a key-to-index map, so lookup and append are fast while
// deletion renumbers the indices above the removed slot.
//
// The zero value is ready to use.
type Ordered[K comparable] struct {
	order []entry[K]
	index map[K]int
}

// NewOrdered returns a new empty Ordered mapping.
func NewOrdered[K comparable]() *Ordered[K] {
	return &Ordered[K]{index: make(map[K]int)}
}

func (m *Ordered[K]) init() {
	if m.index == nil {
		m.index = make(map[K]int)
	}
}

func (m *Ordered[K]) Get(key K) (any, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.order[i].value, true
}

func (m *Ordered[K]) Set(key K, value any) {
	m.init()
	if i, ok := m.index[key]; ok {
		m.order[i].value = value
		return
	}
	m.index[key] = len(m.order)
	m.order = append(m.order, entry[K]{key: key, value: value})
}

func (m *Ordered[K]) Delete(key K) {
	if m.index == nil {
		return
	}
	i, ok := m.index[key]
	if !ok {
		return
	}
	delete(m.index, key)
	copy(m.order[i:], m.order[i+1:])
	m.order = m.order[:len(m.order)-1]
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j].key] = j
	}
}

func (m *Ordered[K]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

func (m *Ordered[K]) Keys() []K {
	keys := make([]K, len(m.order))
	for i, e := range m.order {
		keys[i] = e.key
	}
	return keys
}

func (m *Ordered[K]) Empty() Map[K] { return NewOrdered[K]() }
