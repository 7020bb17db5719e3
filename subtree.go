package patricia

// subtree locates the node whose subtree holds every key prefixed by the
// lengthInBits bits of prefix starting at offsetInBits, or nil if no key has
// that prefix. It walks like getNearestEntryForKey but also stops as soon as
// it reaches a node whose own bitIndex exceeds the prefix length, since
// nothing deeper can still be "the" prefix subtree root.
func (t *Trie[K, V]) subtree(prefix K, offsetInBits, lengthInBits int) *node[K, V] {
	current := t.root.left
	path := t.root
	for {
		if current.bitIndex <= path.bitIndex || lengthInBits < current.bitIndex {
			break
		}
		path = current
		if !t.analyzer.IsBitSet(prefix, offsetInBits+current.bitIndex, offsetInBits+lengthInBits) {
			current = current.left
		} else {
			current = current.right
		}
	}

	entry := current
	if current.isEmpty() {
		entry = path
	}
	if entry.isEmpty() {
		return nil
	}

	offsetLength := offsetInBits + lengthInBits

	if entry == t.root && t.analyzer.LengthInBits(entry.key) < offsetLength {
		return nil
	}

	entryLengthInBits := t.analyzer.LengthInBits(entry.key)
	if t.analyzer.IsBitSet(prefix, offsetLength, offsetLength) != t.analyzer.IsBitSet(entry.key, lengthInBits, entryLengthInBits) {
		return nil
	}

	bitIndex := t.analyzer.BitIndex(prefix, offsetInBits, lengthInBits, entry.key, 0, entryLengthInBits)
	if bitIndex >= 0 && bitIndex < lengthInBits {
		return nil
	}

	return entry
}
