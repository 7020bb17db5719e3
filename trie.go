package patricia

import (
	"fmt"
	"reflect"
)

// Trie is a PATRICIA trie: a compressed binary radix tree keyed by K, with
// no separate leaf nodes — every node is either a branch point, a
// data-bearing node, or both. Structural questions about K (its length in
// bits, the value of a given bit, where two keys first differ) are all
// answered by an injected KeyAnalyzer; Trie itself never inspects K.
//
// The zero value is not usable; construct with New.
type Trie[K any, V any] struct {
	analyzer KeyAnalyzer[K]
	root     *node[K, V]
	size     int
	modCount int
}

// New constructs an empty Trie using analyzer to interpret keys.
func New[K any, V any](analyzer KeyAnalyzer[K]) *Trie[K, V] {
	t := &Trie[K, V]{analyzer: analyzer}
	t.root = &node[K, V]{bitIndex: -1}
	t.root.left = t.root
	t.root.predecessor = t.root
	return t
}

// Size returns the number of key/value pairs stored.
func (t *Trie[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the trie holds no entries.
func (t *Trie[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes every entry, resetting the trie to its just-constructed
// state.
func (t *Trie[K, V]) Clear() {
	t.root = &node[K, V]{bitIndex: -1}
	t.root.left = t.root
	t.root.predecessor = t.root
	t.size = 0
	t.modCount++
}

func (t *Trie[K, V]) incrementSize() {
	t.size++
	t.modCount++
}

func (t *Trie[K, V]) decrementSize() {
	t.size--
	t.modCount++
}

// isNilKey reports whether key is a nil pointer/interface/slice/map/chan/func
// value. Go's generics give no uniform "== nil" over K any, so reflection is
// the only way to generalize the Java original's null-key rejection across
// arbitrary key shapes; value types (strings, ints, structs) are never nil
// and this always returns false for them.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

func (t *Trie[K, V]) bitIndexOf(key K, lengthInBits int, other *node[K, V]) int {
	var otherKey K
	otherLengthInBits := 0
	if !other.isEmpty() {
		otherKey = other.key
		otherLengthInBits = t.analyzer.LengthInBits(otherKey)
	}
	return t.analyzer.BitIndex(key, 0, lengthInBits, otherKey, 0, otherLengthInBits)
}

// getNearestEntryForKey walks the node graph toward the node a key with the
// given length would occupy, stopping as soon as the walk would start
// climbing back up (current.bitIndex <= path.bitIndex). It never returns
// nil; the result may or may not actually hold key.
func (t *Trie[K, V]) getNearestEntryForKey(key K, lengthInBits int) *node[K, V] {
	current := t.root.left
	path := t.root
	for {
		if current.bitIndex <= path.bitIndex {
			return current
		}
		path = current
		if !t.analyzer.IsBitSet(key, current.bitIndex, lengthInBits) {
			current = current.left
		} else {
			current = current.right
		}
	}
}

func (t *Trie[K, V]) getEntry(key K) *node[K, V] {
	lengthInBits := t.analyzer.LengthInBits(key)
	entry := t.getNearestEntryForKey(key, lengthInBits)
	if !entry.isEmpty() && t.analyzer.Compare(key, entry.key) == 0 {
		return entry
	}
	return nil
}

// Get returns the value stored for key, if any.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	if n := t.getEntry(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key has a stored value.
func (t *Trie[K, V]) ContainsKey(key K) bool {
	return t.getEntry(key) != nil
}

// ContainsValue reports whether any stored value equals v, compared with
// reflect.DeepEqual.
func (t *Trie[K, V]) ContainsValue(v V) bool {
	found := false
	it := t.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if reflect.DeepEqual(e.value, v) {
			found = true
			break
		}
	}
	return found
}

// Put associates value with key, returning the previously stored value (if
// any) and whether one existed.
func (t *Trie[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	if isNilKey(key) {
		return zero, false, fmt.Errorf("put: %w", ErrNullKey)
	}
	lengthInBits := t.analyzer.LengthInBits(key)
	if lengthInBits == 0 {
		old, had := t.setRootKeyValue(key, value)
		return old, had, nil
	}
	found := t.getNearestEntryForKey(key, lengthInBits)
	if !found.isEmpty() && t.analyzer.Compare(key, found.key) == 0 {
		old, had := t.replaceAt(found, key, value)
		return old, had, nil
	}

	b := t.bitIndexOf(key, lengthInBits, found)
	switch {
	case IsValidBitIndex(b):
		toAdd := &node[K, V]{key: key, value: value, hasKey: true, bitIndex: b}
		t.addEntry(toAdd, lengthInBits)
		t.incrementSize()
		return zero, false, nil
	case IsNullBitKey(b):
		old, had := t.setRootKeyValue(key, value)
		return old, had, nil
	case IsEqualBitKey(b):
		if found != t.root {
			old, had := t.replaceAt(found, key, value)
			return old, had, nil
		}
		old, had := t.setRootKeyValue(key, value)
		return old, had, nil
	default:
		panic(&InvariantError{Op: "Put", Msg: fmt.Sprintf("unreachable bitIndex %d", b)})
	}
}

func (t *Trie[K, V]) setRootKeyValue(key K, value V) (old V, had bool) {
	had = !t.root.isEmpty()
	old = t.root.value
	if !had {
		t.incrementSize()
	} else {
		t.modCount++
	}
	t.root.key = key
	t.root.hasKey = true
	t.root.value = value
	return old, had
}

func (t *Trie[K, V]) replaceAt(n *node[K, V], key K, value V) (old V, had bool) {
	t.modCount++
	old = n.value
	n.key = key
	n.value = value
	return old, true
}

// addEntry splices toAdd into the graph at the bit index it was computed
// for, in place of whatever uplink or downlink previously occupied that
// position.
func (t *Trie[K, V]) addEntry(toAdd *node[K, V], lengthInBits int) *node[K, V] {
	current := t.root.left
	path := t.root
	for {
		if current.bitIndex >= toAdd.bitIndex || current.bitIndex <= path.bitIndex {
			toAdd.predecessor = toAdd
			if !t.analyzer.IsBitSet(toAdd.key, toAdd.bitIndex, lengthInBits) {
				toAdd.left = toAdd
				toAdd.right = current
			} else {
				toAdd.left = current
				toAdd.right = toAdd
			}
			toAdd.parent = path
			if current.bitIndex >= toAdd.bitIndex {
				current.parent = toAdd
			}
			if current.bitIndex <= path.bitIndex {
				current.predecessor = toAdd
			}
			if path == t.root || !t.analyzer.IsBitSet(toAdd.key, path.bitIndex, lengthInBits) {
				path.left = toAdd
			} else {
				path.right = toAdd
			}
			return toAdd
		}
		path = current
		if !t.analyzer.IsBitSet(toAdd.key, current.bitIndex, lengthInBits) {
			current = current.left
		} else {
			current = current.right
		}
	}
}

// Remove deletes key, returning its stored value and whether it was present.
func (t *Trie[K, V]) Remove(key K) (V, bool) {
	var zero V
	lengthInBits := t.analyzer.LengthInBits(key)
	current := t.root.left
	path := t.root
	for {
		if current.bitIndex <= path.bitIndex {
			if !current.isEmpty() && t.analyzer.Compare(key, current.key) == 0 {
				return t.removeEntry(current)
			}
			return zero, false
		}
		path = current
		if !t.analyzer.IsBitSet(key, current.bitIndex, lengthInBits) {
			current = current.left
		} else {
			current = current.right
		}
	}
}

func (t *Trie[K, V]) removeEntry(h *node[K, V]) (V, bool) {
	return t.removeNode(h), true
}

// removeNode detaches h from the graph (if it isn't the root) and clears its
// key/value, returning the value it held. Used directly by iterators,
// SelectWithCursor (RemoveAndExit), and Traverse, which already hold h rather than a
// key to look up.
func (t *Trie[K, V]) removeNode(h *node[K, V]) V {
	if h != t.root {
		if h.isInternal() {
			t.removeInternalEntry(h)
		} else {
			t.removeExternalEntry(h)
		}
	}
	t.decrementSize()
	old := h.value
	var zeroK K
	var zeroV V
	h.key = zeroK
	h.hasKey = false
	h.value = zeroV
	return old
}

func (t *Trie[K, V]) removeExternalEntry(h *node[K, V]) {
	if h == t.root {
		panic(&InvariantError{Op: "removeExternalEntry", Msg: "cannot remove root this way"})
	}
	if h.isInternal() {
		panic(&InvariantError{Op: "removeExternalEntry", Msg: "h is internal"})
	}

	parent := h.parent
	var child *node[K, V]
	if h.left == h {
		child = h.right
	} else {
		child = h.left
	}
	if parent.left == h {
		parent.left = child
	} else {
		parent.right = child
	}

	if child.bitIndex > parent.bitIndex {
		child.parent = parent
	} else {
		child.predecessor = parent
	}
}

func (t *Trie[K, V]) removeInternalEntry(h *node[K, V]) {
	p := h.predecessor
	p.bitIndex = h.bitIndex

	{
		parent := p.parent
		var child *node[K, V]
		if p.left == h {
			child = p.right
		} else {
			child = p.left
		}
		if p.predecessor == p && p.parent != h {
			p.predecessor = p.parent
		}
		if parent.left == p {
			parent.left = child
		} else {
			parent.right = child
		}
		if child != nil && child.bitIndex > parent.bitIndex {
			child.parent = parent
		}
	}

	{
		if h.left.parent == h {
			h.left.parent = p
		}
		if h.right != nil && h.right.parent == h {
			h.right.parent = p
		}
		if h.parent.left == h {
			h.parent.left = p
		} else {
			h.parent.right = p
		}
	}

	p.parent = h.parent
	p.left = h.left
	p.right = h.right

	if isValidUplink(p.left, p) {
		p.left.predecessor = p
	}
	if isValidUplink(p.right, p) {
		p.right.predecessor = p
	}
}

func isValidUplink[K any, V any](next, from *node[K, V]) bool {
	return next != nil && next.bitIndex <= from.bitIndex && !next.isEmpty()
}

// Remap performs a read-modify-write against a single key: fn is
// called with the existing value (or the zero value) and whether it existed,
// and returns the value to store and whether to store it at all — returning
// ok=false deletes the key (a no-op if it was already absent). It is carried
// out as a Get followed by a Put or Remove. Remap returns the value fn
// stored (or, when fn deleted the key, the removed value) and whether the
// trie was changed.
func (t *Trie[K, V]) Remap(key K, fn func(existing V, found bool) (V, bool)) (V, bool, error) {
	var zero V
	if isNilKey(key) {
		return zero, false, fmt.Errorf("remap: %w", ErrNullKey)
	}
	existing, found := t.Get(key)
	newValue, ok := fn(existing, found)
	if !ok {
		if found {
			old, _ := t.Remove(key)
			return old, true, nil
		}
		return zero, false, nil
	}
	if _, _, err := t.Put(key, newValue); err != nil {
		return zero, false, err
	}
	return newValue, true, nil
}

// RemapIfAbsent stores value for key only if key is not already present,
// returning the value now associated with key (the existing one, or the
// newly stored one) and whether it was newly stored.
func (t *Trie[K, V]) RemapIfAbsent(key K, value V) (V, bool, error) {
	if existing, found := t.Get(key); found {
		return existing, false, nil
	}
	_, _, err := t.Put(key, value)
	if err != nil {
		var zero V
		return zero, false, err
	}
	return value, true, nil
}

// Equal reports whether t and other hold the same set of keys, compared
// with the analyzer's Compare.
func (t *Trie[K, V]) Equal(other *Trie[K, V]) bool {
	if t.Size() != other.Size() {
		return false
	}
	it := t.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false
		}
		if !other.ContainsKey(e.key) {
			return false
		}
	}
	return true
}

// DeepEqual reports whether t and other hold the same keys each mapped to
// equal values, compared with reflect.DeepEqual.
func (t *Trie[K, V]) DeepEqual(other *Trie[K, V]) bool {
	if t.Size() != other.Size() {
		return false
	}
	it := t.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false
		}
		v, ok := other.Get(e.key)
		if !ok || !reflect.DeepEqual(e.value, v) {
			return false
		}
	}
	return true
}

// GetAny, ContainsKeyAny, and RemoveAny give a caller holding a key as `any`
// (rather than the statically-typed K) the same generic-erased surface the
// Java original exposes via Map's Object-typed key parameter. A key that
// doesn't assert to K reports ErrWrongKeyType rather than panicking.

func (t *Trie[K, V]) GetAny(key any) (V, error) {
	k, ok := key.(K)
	if !ok {
		var zero V
		return zero, fmt.Errorf("get: %w", ErrWrongKeyType)
	}
	v, found := t.Get(k)
	if !found {
		var zero V
		return zero, fmt.Errorf("get: %w", ErrNoSuchElement)
	}
	return v, nil
}

func (t *Trie[K, V]) ContainsKeyAny(key any) (bool, error) {
	k, ok := key.(K)
	if !ok {
		return false, fmt.Errorf("containsKey: %w", ErrWrongKeyType)
	}
	return t.ContainsKey(k), nil
}

func (t *Trie[K, V]) RemoveAny(key any) (V, bool, error) {
	k, ok := key.(K)
	if !ok {
		var zero V
		return zero, false, fmt.Errorf("remove: %w", ErrWrongKeyType)
	}
	v, had := t.Remove(k)
	return v, had, nil
}
