package patricia

import "fmt"

// RangeMap is a bounded [fromKey, toKey) (or half-open, or unbounded on
// either side) view over a Trie, produced by SubMap, HeadMap, and TailMap.
// It holds no entries of its own; every read or write is range-checked and
// then delegated to the backing trie.
type RangeMap[K any, V any] struct {
	trie          *Trie[K, V]
	fromKey       *K
	fromInclusive bool
	toKey         *K
	toInclusive   bool
}

// SubMap returns a view of the entries in [fromKey, toKey).
func (t *Trie[K, V]) SubMap(fromKey, toKey K) (*RangeMap[K, V], error) {
	return t.newRangeMap(&fromKey, true, &toKey, false)
}

// HeadMap returns a view of the entries strictly less than toKey.
func (t *Trie[K, V]) HeadMap(toKey K) (*RangeMap[K, V], error) {
	return t.newRangeMap(nil, true, &toKey, false)
}

// TailMap returns a view of the entries greater than or equal to fromKey.
func (t *Trie[K, V]) TailMap(fromKey K) (*RangeMap[K, V], error) {
	return t.newRangeMap(&fromKey, true, nil, false)
}

func (t *Trie[K, V]) newRangeMap(fromKey *K, fromInclusive bool, toKey *K, toInclusive bool) (*RangeMap[K, V], error) {
	if fromKey == nil && toKey == nil {
		return nil, fmt.Errorf("rangeMap: %w", ErrIllegalArgument)
	}
	if fromKey != nil && toKey != nil && t.analyzer.Compare(*fromKey, *toKey) > 0 {
		return nil, fmt.Errorf("rangeMap: fromKey after toKey: %w", ErrIllegalArgument)
	}
	return &RangeMap[K, V]{trie: t, fromKey: fromKey, fromInclusive: fromInclusive, toKey: toKey, toInclusive: toInclusive}, nil
}

func (m *RangeMap[K, V]) inFromRange(key K, forceInclusive bool) bool {
	if m.fromKey == nil {
		return true
	}
	cmp := m.trie.analyzer.Compare(key, *m.fromKey)
	if m.fromInclusive || forceInclusive {
		return cmp >= 0
	}
	return cmp > 0
}

func (m *RangeMap[K, V]) inToRange(key K, forceInclusive bool) bool {
	if m.toKey == nil {
		return true
	}
	cmp := m.trie.analyzer.Compare(key, *m.toKey)
	if m.toInclusive || forceInclusive {
		return cmp <= 0
	}
	return cmp < 0
}

func (m *RangeMap[K, V]) inRange(key K) bool {
	return m.inFromRange(key, false) && m.inToRange(key, false)
}

// inRange2 is the relaxed check used when validating a sub-range's own
// bounds: the upper bound is allowed to sit exactly on this range's toKey
// even when toKey itself is exclusive.
func (m *RangeMap[K, V]) inRange2(key K) bool {
	return m.inFromRange(key, false) && m.inToRange(key, true)
}

// ContainsKey reports whether key falls in range and is present.
func (m *RangeMap[K, V]) ContainsKey(key K) bool {
	if !m.inRange(key) {
		return false
	}
	return m.trie.ContainsKey(key)
}

// Get returns the value for key if it's in range and present.
func (m *RangeMap[K, V]) Get(key K) (V, bool) {
	if !m.inRange(key) {
		var zero V
		return zero, false
	}
	return m.trie.Get(key)
}

// Put inserts key/value if key falls within this view's range.
func (m *RangeMap[K, V]) Put(key K, value V) (V, bool, error) {
	if !m.inRange(key) {
		var zero V
		return zero, false, fmt.Errorf("put: %w", ErrOutOfRange)
	}
	return m.trie.Put(key, value)
}

// Remove deletes key if it falls within this view's range.
func (m *RangeMap[K, V]) Remove(key K) (V, bool) {
	if !m.inRange(key) {
		var zero V
		return zero, false
	}
	return m.trie.Remove(key)
}

// FirstKey returns the smallest key within this view's range.
func (m *RangeMap[K, V]) FirstKey() (K, error) {
	var e *node[K, V]
	switch {
	case m.fromKey == nil:
		e = m.trie.firstEntry()
	case m.fromInclusive:
		e = m.trie.ceilingEntry(*m.fromKey)
	default:
		e = m.trie.higherEntry(*m.fromKey)
	}
	if e == nil || !m.inToRange(e.key, false) {
		var zero K
		return zero, fmt.Errorf("firstKey: %w", ErrNoSuchElement)
	}
	return e.key, nil
}

// LastKey returns the largest key within this view's range.
func (m *RangeMap[K, V]) LastKey() (K, error) {
	var e *node[K, V]
	switch {
	case m.toKey == nil:
		e = m.trie.lastEntry()
	case m.toInclusive:
		e = m.trie.floorEntry(*m.toKey)
	default:
		e = m.trie.lowerEntry(*m.toKey)
	}
	if e == nil || !m.inFromRange(e.key, false) {
		var zero K
		return zero, fmt.Errorf("lastKey: %w", ErrNoSuchElement)
	}
	return e.key, nil
}

// Entries returns a fail-fast iterator over every entry in this view's
// range, in sorted order.
func (m *RangeMap[K, V]) Entries() entryIter[K, V] {
	var first *node[K, V]
	if m.fromKey == nil {
		first = m.trie.firstEntry()
	} else if m.fromInclusive {
		first = m.trie.ceilingEntry(*m.fromKey)
	} else {
		first = m.trie.higherEntry(*m.fromKey)
	}
	if first == nil {
		return emptyIterator[K, V]{}
	}

	var excludedKey K
	hasExcluded := false
	if m.toKey != nil {
		var last *node[K, V]
		if m.toInclusive {
			last = m.trie.higherEntry(*m.toKey)
		} else {
			last = m.trie.ceilingEntry(*m.toKey)
		}
		if last != nil {
			excludedKey = last.key
			hasExcluded = true
		}
	}
	return m.trie.newRangeIterator(first, excludedKey, hasExcluded)
}

// SubMap narrows this view further to the range from fromKey to toKey, with
// the same end inclusivity as this view ([fromKey, toKey) for a view made by
// Trie.SubMap, HeadMap, or TailMap).
func (m *RangeMap[K, V]) SubMap(fromKey, toKey K) (*RangeMap[K, V], error) {
	if !m.inRange2(fromKey) || !m.inRange2(toKey) {
		return nil, fmt.Errorf("subMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(&fromKey, m.fromInclusive, &toKey, m.toInclusive)
}

// HeadMap narrows this view to entries strictly less than toKey.
func (m *RangeMap[K, V]) HeadMap(toKey K) (*RangeMap[K, V], error) {
	if !m.inRange2(toKey) {
		return nil, fmt.Errorf("headMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(m.fromKey, m.fromInclusive, &toKey, m.toInclusive)
}

// TailMap narrows this view to entries from fromKey on, including fromKey
// only when this view's own lower bound is inclusive.
func (m *RangeMap[K, V]) TailMap(fromKey K) (*RangeMap[K, V], error) {
	if !m.inRange2(fromKey) {
		return nil, fmt.Errorf("tailMap: %w", ErrOutOfRange)
	}
	return m.trie.newRangeMap(&fromKey, m.fromInclusive, m.toKey, m.toInclusive)
}
