package patricia

// node is a single position in the trie's node graph. Every node plays one
// of two roles depending on how its left/right links are populated:
//
//   - internal: neither left nor right loops back to the node itself; each
//     is a downlink (bitIndex strictly greater than this node's own) or an
//     uplink to some other data-bearing node.
//   - external: left or right is a self-loop uplink back to the node itself.
//
// The root is a sentinel with bitIndex -1 that holds a real key only once a
// zero-length or all-zero-bit key is inserted; root.left self-loops when the trie is
// empty, and root.right is the only link in the whole graph allowed to be
// nil (every other node's links always point somewhere, even if only back
// at themselves).
type node[K any, V any] struct {
	key    K
	value  V
	hasKey bool

	bitIndex int

	parent      *node[K, V]
	left        *node[K, V]
	right       *node[K, V]
	predecessor *node[K, V]
}

func (n *node[K, V]) isEmpty() bool {
	return !n.hasKey
}

// isInternal reports whether neither child is a self-loop back to n.
func (n *node[K, V]) isInternal() bool {
	return n.left != n && n.right != n
}

// isExternal reports whether at least one child is a self-loop back to n.
func (n *node[K, V]) isExternal() bool {
	return !n.isInternal()
}

func (n *node[K, V]) toEntry() Entry[K, V] {
	return Entry[K, V]{key: n.key, value: n.value}
}

// Entry is an immutable key/value snapshot handed to callers by iterators,
// Select, and Traverse. It does not track the node it was read from, so
// holding one past a mutation is always safe — it just goes stale.
type Entry[K any, V any] struct {
	key   K
	value V
}

// GetKey returns the entry's key.
func (e Entry[K, V]) GetKey() K {
	return e.key
}

// GetValue returns the entry's value.
func (e Entry[K, V]) GetValue() V {
	return e.value
}
