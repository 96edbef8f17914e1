package tree

// sentinel is the type of the Sentinel absence marker.
type sentinel struct{}

func (sentinel) String() string { return "<absent>" }

// Sentinel represents "no value here". It is distinct from nil and from
// every legitimate payload value, so combinators can tell a missing key
// apart from a key holding a nil-like value. Operations never store the
// sentinel in a result mapping; a combinator that returns it causes the
// corresponding key to be omitted from the output.
var Sentinel = sentinel{}

// IsSentinel reports whether v is the absence marker.
func IsSentinel(v any) bool {
	_, ok := v.(sentinel)
	return ok
}
