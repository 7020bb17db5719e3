package patricia

// Ceiling, Floor, Higher, and Lower locate a key relative to a query key
// without requiring an exact match, each following the same trick: walk the
// insert algorithm as far as it takes to place the query key, read off the
// neighbor the probe would have landed next to, then undo the insert. The
// modCount is rolled back by exactly the two bumps the probe incurred (one
// increment on insert, one decrement on removal) so iterators in flight
// don't see a structural change that in the end never happened.

// Ceiling returns the least key greater than or equal to key, and its value.
func (t *Trie[K, V]) Ceiling(key K) (K, V, bool) {
	n := t.ceilingEntry(key)
	return entryOrZero(n)
}

func (t *Trie[K, V]) ceilingEntry(key K) *node[K, V] {
	lengthInBits := t.analyzer.LengthInBits(key)

	if lengthInBits == 0 {
		if !t.root.isEmpty() {
			return t.root
		}
		return t.firstEntry()
	}

	found := t.getNearestEntryForKey(key, lengthInBits)
	if t.analyzer.Compare(key, found.key) == 0 {
		return found
	}

	bitIndex := t.bitIndexOf(key, lengthInBits, found)
	switch {
	case IsValidBitIndex(bitIndex):
		added := &node[K, V]{key: key, bitIndex: bitIndex, hasKey: true}
		t.addEntry(added, lengthInBits)
		t.incrementSize()
		ceil := t.nextEntry(added)
		t.removeNode(added)
		t.modCount -= 2
		return ceil
	case IsNullBitKey(bitIndex):
		if !t.root.isEmpty() {
			return t.root
		}
		return t.firstEntry()
	case IsEqualBitKey(bitIndex):
		return found
	default:
		panic(&InvariantError{Op: "Ceiling", Msg: "invalid lookup"})
	}
}

// Floor returns the greatest key less than or equal to key, and its value.
func (t *Trie[K, V]) Floor(key K) (K, V, bool) {
	n := t.floorEntry(key)
	return entryOrZero(n)
}

func (t *Trie[K, V]) floorEntry(key K) *node[K, V] {
	lengthInBits := t.analyzer.LengthInBits(key)

	if lengthInBits == 0 {
		if !t.root.isEmpty() {
			return t.root
		}
		return nil
	}

	found := t.getNearestEntryForKey(key, lengthInBits)
	if t.analyzer.Compare(key, found.key) == 0 {
		return found
	}

	bitIndex := t.bitIndexOf(key, lengthInBits, found)
	switch {
	case IsValidBitIndex(bitIndex):
		added := &node[K, V]{key: key, bitIndex: bitIndex, hasKey: true}
		t.addEntry(added, lengthInBits)
		t.incrementSize()
		floor := t.previousEntry(added)
		t.removeNode(added)
		t.modCount -= 2
		return floor
	case IsNullBitKey(bitIndex):
		if !t.root.isEmpty() {
			return t.root
		}
		return nil
	case IsEqualBitKey(bitIndex):
		return found
	default:
		panic(&InvariantError{Op: "Floor", Msg: "invalid lookup"})
	}
}

// Higher returns the least key strictly greater than key, and its value.
func (t *Trie[K, V]) Higher(key K) (K, V, bool) {
	n := t.higherEntry(key)
	return entryOrZero(n)
}

func (t *Trie[K, V]) higherEntry(key K) *node[K, V] {
	lengthInBits := t.analyzer.LengthInBits(key)

	if lengthInBits == 0 {
		if !t.root.isEmpty() {
			if t.Size() > 1 {
				return t.nextEntry(t.root)
			}
			return nil
		}
		return t.firstEntry()
	}

	found := t.getNearestEntryForKey(key, lengthInBits)
	if t.analyzer.Compare(key, found.key) == 0 {
		return t.nextEntry(found)
	}

	bitIndex := t.bitIndexOf(key, lengthInBits, found)
	switch {
	case IsValidBitIndex(bitIndex):
		added := &node[K, V]{key: key, bitIndex: bitIndex, hasKey: true}
		t.addEntry(added, lengthInBits)
		t.incrementSize()
		ceil := t.nextEntry(added)
		t.removeNode(added)
		t.modCount -= 2
		return ceil
	case IsNullBitKey(bitIndex):
		if !t.root.isEmpty() {
			return t.firstEntry()
		} else if t.Size() > 1 {
			return t.nextEntry(t.firstEntry())
		}
		return nil
	case IsEqualBitKey(bitIndex):
		return t.nextEntry(found)
	default:
		panic(&InvariantError{Op: "Higher", Msg: "invalid lookup"})
	}
}

// Lower returns the greatest key strictly less than key, and its value.
func (t *Trie[K, V]) Lower(key K) (K, V, bool) {
	n := t.lowerEntry(key)
	return entryOrZero(n)
}

func (t *Trie[K, V]) lowerEntry(key K) *node[K, V] {
	lengthInBits := t.analyzer.LengthInBits(key)

	if lengthInBits == 0 {
		return nil
	}

	found := t.getNearestEntryForKey(key, lengthInBits)
	if t.analyzer.Compare(key, found.key) == 0 {
		return t.previousEntry(found)
	}

	bitIndex := t.bitIndexOf(key, lengthInBits, found)
	switch {
	case IsValidBitIndex(bitIndex):
		added := &node[K, V]{key: key, bitIndex: bitIndex, hasKey: true}
		t.addEntry(added, lengthInBits)
		t.incrementSize()
		prior := t.previousEntry(added)
		t.removeNode(added)
		t.modCount -= 2
		return prior
	case IsNullBitKey(bitIndex):
		return nil
	case IsEqualBitKey(bitIndex):
		return t.previousEntry(found)
	default:
		panic(&InvariantError{Op: "Lower", Msg: "invalid lookup"})
	}
}

func entryOrZero[K any, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.value, true
}
