package patricia

import "fmt"

// Decision is the disposition a Cursor returns for the entry it was just
// shown.
type Decision int

const (
	// Continue moves on to the next entry without modifying the trie.
	Continue Decision = iota
	// Exit stops the walk and returns the current entry.
	Exit
	// Remove deletes the current entry and continues. Legal only during
	// Traverse; a Cursor that returns Remove from inside Select gets
	// ErrUnsupported back, since Select's recursive descent has no "resume
	// after a structural change" story the way Traverse's flat loop does.
	Remove
	// RemoveAndExit deletes the current entry and stops the walk,
	// returning a detached snapshot of the entry that was removed.
	RemoveAndExit
)

// Cursor is shown one entry at a time by Select and Traverse and decides
// what happens next.
type Cursor[K any, V any] func(entry Entry[K, V]) Decision

// Select returns the entry whose key is closest to key by XOR distance —
// the entry a plain bit-walk toward key's shape lands nearest to, without
// requiring an exact match.
func (t *Trie[K, V]) Select(key K) (Entry[K, V], bool) {
	lengthInBits := t.analyzer.LengthInBits(key)
	var result *node[K, V]
	t.selectR(t.root.left, -1, key, lengthInBits, &result)
	if result == nil {
		var zero Entry[K, V]
		return zero, false
	}
	return result.toEntry(), true
}

// selectR mirrors the plain (cursor-less) selectR: it returns true to mean
// "keep searching", false once a result has been fixed in result.
func (t *Trie[K, V]) selectR(h *node[K, V], bitIndex int, key K, lengthInBits int, result **node[K, V]) bool {
	if h.bitIndex <= bitIndex {
		if !h.isEmpty() {
			*result = h
			return false
		}
		return true
	}

	if !t.analyzer.IsBitSet(key, h.bitIndex, lengthInBits) {
		if t.selectR(h.left, h.bitIndex, key, lengthInBits, result) {
			return t.selectR(h.right, h.bitIndex, key, lengthInBits, result)
		}
	} else {
		if t.selectR(h.right, h.bitIndex, key, lengthInBits, result) {
			return t.selectR(h.left, h.bitIndex, key, lengthInBits, result)
		}
	}
	return false
}

// SelectWithCursor walks toward key the same way Select does, but shows
// every entry it passes along the way to cursor, which can stop early
// (Exit), or delete the current entry and stop (RemoveAndExit). A Remove
// decision is reported as ErrUnsupported.
func (t *Trie[K, V]) SelectWithCursor(key K, cursor Cursor[K, V]) (Entry[K, V], bool, error) {
	lengthInBits := t.analyzer.LengthInBits(key)
	var result Entry[K, V]
	var found bool
	var selErr error
	t.selectRCursor(t.root.left, -1, key, lengthInBits, cursor, &result, &found, &selErr)
	if selErr != nil {
		return Entry[K, V]{}, false, selErr
	}
	return result, found, nil
}

func (t *Trie[K, V]) selectRCursor(h *node[K, V], bitIndex int, key K, lengthInBits int, cursor Cursor[K, V], result *Entry[K, V], found *bool, selErr *error) bool {
	if h.bitIndex <= bitIndex {
		if !h.isEmpty() {
			switch cursor(h.toEntry()) {
			case Remove:
				*selErr = fmt.Errorf("select: %w", ErrUnsupported)
				return false
			case Exit:
				*result = h.toEntry()
				*found = true
				return false
			case RemoveAndExit:
				detached := h.toEntry()
				t.removeNode(h)
				*result = detached
				*found = true
				return false
			case Continue:
			}
		}
		return true
	}

	if !t.analyzer.IsBitSet(key, h.bitIndex, lengthInBits) {
		if t.selectRCursor(h.left, h.bitIndex, key, lengthInBits, cursor, result, found, selErr) {
			return t.selectRCursor(h.right, h.bitIndex, key, lengthInBits, cursor, result, found, selErr)
		}
	} else {
		if t.selectRCursor(h.right, h.bitIndex, key, lengthInBits, cursor, result, found, selErr) {
			return t.selectRCursor(h.left, h.bitIndex, key, lengthInBits, cursor, result, found, selErr)
		}
	}
	return false
}

// Traverse walks every entry in sorted order, showing each to cursor.
// Entries can be removed as the walk proceeds (Remove/RemoveAndExit); the
// successor is always computed before a removal takes effect, so the walk
// never skips or repeats an entry because of its own mutation.
func (t *Trie[K, V]) Traverse(cursor Cursor[K, V]) (Entry[K, V], bool) {
	entry := t.nextEntry(nil)
	for entry != nil {
		current := entry
		decision := cursor(current.toEntry())
		entry = t.nextEntry(current)

		switch decision {
		case Exit:
			return current.toEntry(), true
		case Remove:
			t.removeNode(current)
		case RemoveAndExit:
			result := current.toEntry()
			t.removeNode(current)
			return result, true
		case Continue:
		}
	}
	var zero Entry[K, V]
	return zero, false
}
