package patricia

import "fmt"

// PrefixMap is a live view of every entry whose key starts with a fixed bit
// prefix, produced by Trie.GetPrefixedBy and its variants. Unlike RangeMap,
// its bounds are cached and lazily recomputed (fixup) whenever the backing
// trie's modCount has drifted since the last recompute, because a prefix's
// first/last key and size depend on the trie's current shape rather than on
// a pair of keys fixed at construction time.
type PrefixMap[K any, V any] struct {
	trie             *Trie[K, V]
	prefix           K
	offsetInBits     int
	lengthInBits     int
	fromKey          *K
	toKey            *K
	expectedModCount int
	size             int
}

// GetPrefixedBy returns a view of every entry whose key starts with key.
func (t *Trie[K, V]) GetPrefixedBy(key K) (*PrefixMap[K, V], error) {
	return t.getPrefixedByBits(key, 0, t.analyzer.LengthInBits(key))
}

// GetPrefixedByElements returns a view of every entry whose key shares the
// first length elements (as sized by the analyzer's BitsPerElement) with key.
func (t *Trie[K, V]) GetPrefixedByElements(key K, length int) (*PrefixMap[K, V], error) {
	bpe := t.analyzer.BitsPerElement()
	return t.getPrefixedByBits(key, 0, length*bpe)
}

// GetPrefixedByElementsOffset is GetPrefixedByElements starting offset
// elements into key rather than at its beginning.
func (t *Trie[K, V]) GetPrefixedByElementsOffset(key K, offset, length int) (*PrefixMap[K, V], error) {
	bpe := t.analyzer.BitsPerElement()
	return t.getPrefixedByBits(key, offset*bpe, length*bpe)
}

// GetPrefixedByBits is GetPrefixedBy with the prefix length given directly
// in bits rather than derived from key's own length.
func (t *Trie[K, V]) GetPrefixedByBits(key K, lengthInBits int) (*PrefixMap[K, V], error) {
	return t.getPrefixedByBits(key, 0, lengthInBits)
}

// GetPrefixedByBitsOffset is GetPrefixedByBits starting offsetInBits into key.
func (t *Trie[K, V]) GetPrefixedByBitsOffset(key K, offsetInBits, lengthInBits int) (*PrefixMap[K, V], error) {
	return t.getPrefixedByBits(key, offsetInBits, lengthInBits)
}

func (t *Trie[K, V]) getPrefixedByBits(key K, offsetInBits, lengthInBits int) (*PrefixMap[K, V], error) {
	if bpe := t.analyzer.BitsPerElement(); offsetInBits%bpe != 0 || lengthInBits%bpe != 0 {
		return nil, fmt.Errorf("getPrefixedBy: offset or length off element boundary: %w", ErrIllegalArgument)
	}
	if offsetInBits+lengthInBits > t.analyzer.LengthInBits(key) {
		return nil, fmt.Errorf("getPrefixedBy: prefix longer than key: %w", ErrIllegalArgument)
	}
	return &PrefixMap[K, V]{trie: t, prefix: key, offsetInBits: offsetInBits, lengthInBits: lengthInBits, size: -1}, nil
}

func (m *PrefixMap[K, V]) inRange(key K) bool {
	return m.trie.analyzer.IsPrefix(m.prefix, m.offsetInBits, m.lengthInBits, key)
}

// ContainsKey reports whether key shares this view's prefix and is present.
func (m *PrefixMap[K, V]) ContainsKey(key K) bool {
	if !m.inRange(key) {
		return false
	}
	return m.trie.ContainsKey(key)
}

// Get returns the value for key if it shares this view's prefix and is
// present.
func (m *PrefixMap[K, V]) Get(key K) (V, bool) {
	if !m.inRange(key) {
		var zero V
		return zero, false
	}
	return m.trie.Get(key)
}

// Put inserts key/value if key shares this view's prefix.
func (m *PrefixMap[K, V]) Put(key K, value V) (V, bool, error) {
	if !m.inRange(key) {
		var zero V
		return zero, false, fmt.Errorf("put: %w", ErrOutOfRange)
	}
	return m.trie.Put(key, value)
}

// Remove deletes key if it shares this view's prefix.
func (m *PrefixMap[K, V]) Remove(key K) (V, bool) {
	if !m.inRange(key) {
		var zero V
		return zero, false
	}
	return m.trie.Remove(key)
}

// Size returns the number of entries currently under this view's prefix,
// recomputing the cached bounds first if the trie has changed since the
// last call.
func (m *PrefixMap[K, V]) Size() int {
	return m.fixup()
}

// fixup recomputes fromKey, toKey, and size by walking the prefix subtree
// fresh and reading the entries immediately outside it. Mirrors the Java
// original's lazy recompute, triggered by modCount drift rather than on
// every read.
func (m *PrefixMap[K, V]) fixup() int {
	if m.size != -1 && m.trie.modCount == m.expectedModCount {
		return m.size
	}

	it := m.Entries()
	size := 0
	var firstKey K
	hasFirst := false
	if it.HasNext() {
		e, _ := it.Next()
		firstKey = e.key
		hasFirst = true
		size = 1
	}

	var fromKey *K
	if hasFirst {
		if prior := m.trie.previousEntry(m.trie.getEntry(firstKey)); prior != nil {
			k := prior.key
			fromKey = &k
		}
	}

	lastKey := firstKey
	for it.HasNext() {
		size++
		e, _ := it.Next()
		lastKey = e.key
	}

	var toKey *K
	if hasFirst {
		if next := m.trie.nextEntry(m.trie.getEntry(lastKey)); next != nil {
			k := next.key
			toKey = &k
		}
	}

	m.fromKey = fromKey
	m.toKey = toKey
	m.size = size
	m.expectedModCount = m.trie.modCount
	return size
}

// FirstKey returns the smallest key under this view's prefix.
func (m *PrefixMap[K, V]) FirstKey() (K, error) {
	m.fixup()
	var e *node[K, V]
	if m.fromKey == nil {
		e = m.trie.firstEntry()
	} else {
		e = m.trie.higherEntry(*m.fromKey)
	}
	if e == nil || !m.inRange(e.key) {
		var zero K
		return zero, fmt.Errorf("firstKey: %w", ErrNoSuchElement)
	}
	return e.key, nil
}

// LastKey returns the largest key under this view's prefix.
func (m *PrefixMap[K, V]) LastKey() (K, error) {
	m.fixup()
	var e *node[K, V]
	if m.toKey == nil {
		e = m.trie.lastEntry()
	} else {
		e = m.trie.lowerEntry(*m.toKey)
	}
	if e == nil || !m.inRange(e.key) {
		var zero K
		return zero, fmt.Errorf("lastKey: %w", ErrNoSuchElement)
	}
	return e.key, nil
}

// Entries returns a fail-fast iterator over every entry under this view's
// prefix, in sorted order. The prefix subtree root is relocated fresh on
// every call, so the returned iterator reflects the trie's current shape
// even if entries were added or removed since the view was constructed.
func (m *PrefixMap[K, V]) Entries() entryIter[K, V] {
	prefixStart := m.trie.subtree(m.prefix, m.offsetInBits, m.lengthInBits)
	if prefixStart == nil {
		return emptyIterator[K, V]{}
	}
	if m.lengthInBits >= prefixStart.bitIndex {
		return newSingletonIterator(m.trie, prefixStart)
	}
	return m.trie.newPrefixIterator(prefixStart, m.prefix, m.offsetInBits, m.lengthInBits)
}

// SubMap narrows this prefix view to a plain bounded [fromKey, toKey) range.
func (m *PrefixMap[K, V]) SubMap(fromKey, toKey K) (*RangeMap[K, V], error) {
	m.fixup()
	if !m.inRange(fromKey) || !m.inRange(toKey) {
		return nil, fmt.Errorf("subMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(&fromKey, true, &toKey, false)
}

// HeadMap narrows this prefix view to entries strictly less than toKey.
func (m *PrefixMap[K, V]) HeadMap(toKey K) (*RangeMap[K, V], error) {
	m.fixup()
	if !m.inRange(toKey) {
		return nil, fmt.Errorf("headMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(m.fromKey, false, &toKey, false)
}

// TailMap narrows this prefix view to entries greater than or equal to
// fromKey.
func (m *PrefixMap[K, V]) TailMap(fromKey K) (*RangeMap[K, V], error) {
	m.fixup()
	if !m.inRange(fromKey) {
		return nil, fmt.Errorf("tailMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(&fromKey, true, m.toKey, false)
}
