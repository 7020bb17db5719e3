package patricia

import "fmt"

// firstEntry returns the entry with the smallest key, or nil if the trie is
// empty. Implemented by following the left spine until a valid uplink is
// found; that uplink is the first key.
func (t *Trie[K, V]) firstEntry() *node[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.followLeft(t.root)
}

// followLeft walks down the left spine starting at n, falling back to the
// right child whenever a left child is empty (the root-is-empty case),
// until it reaches a valid uplink.
func (t *Trie[K, V]) followLeft(n *node[K, V]) *node[K, V] {
	for {
		child := n.left
		if child.isEmpty() {
			child = n.right
		}
		if child.bitIndex <= n.bitIndex {
			return child
		}
		n = child
	}
}

// lastEntry returns the entry with the largest key, or nil if the trie is
// empty.
func (t *Trie[K, V]) lastEntry() *node[K, V] {
	if t.root.left == t.root {
		if t.root.isEmpty() {
			return nil
		}
		return t.root
	}
	return t.followRight(t.root.left)
}

// followRight walks down the right spine starting at n until it finds an
// uplink.
func (t *Trie[K, V]) followRight(n *node[K, V]) *node[K, V] {
	if n.right == nil {
		return nil
	}
	for n.right.bitIndex > n.bitIndex {
		n = n.right
	}
	return n.right
}

// nextEntry returns the entry lexicographically after from, or the first
// entry if from is nil.
func (t *Trie[K, V]) nextEntry(from *node[K, V]) *node[K, V] {
	if from == nil {
		return t.firstEntry()
	}
	return t.nextEntryImpl(from.predecessor, from, nil)
}

// nextEntryInSubtree is like nextEntry but never climbs above tree, limiting
// the walk to a prefix-scoped subtree. Behavior is undefined if from is not
// actually within tree.
func (t *Trie[K, V]) nextEntryInSubtree(from, tree *node[K, V]) *node[K, V] {
	if from == nil {
		return t.firstEntry()
	}
	return t.nextEntryImpl(from.predecessor, from, tree)
}

// nextEntryImpl scans for the next node given a starting point and a hint
// (previous) that previous was already returned, so it isn't returned again.
// If tree is non-nil, the search never climbs above it.
//
// Each pass: (1) scan left until a valid uplink or the previously-returned
// left child is hit; (2) if nothing on the left, check the right, recursing
// down it if it isn't immediately a valid uplink; (3) otherwise climb
// through parents until one is reached by a left-hand child link rather than
// a right-hand one, then check its right sibling the same way.
func (t *Trie[K, V]) nextEntryImpl(start, previous, tree *node[K, V]) *node[K, V] {
	current := start

	if previous == nil || start != previous.predecessor {
		for !current.left.isEmpty() {
			if previous == current.left {
				break
			}
			if isValidUplink(current.left, current) {
				return current.left
			}
			current = current.left
		}
	}

	if current.isEmpty() {
		return nil
	}

	if current.right == nil {
		return nil
	}

	if previous != current.right {
		if isValidUplink(current.right, current) {
			return current.right
		}
		return t.nextEntryImpl(current.right, previous, tree)
	}

	for current == current.parent.right {
		if current == tree {
			return nil
		}
		current = current.parent
	}

	if current == tree {
		return nil
	}

	if current.parent.right == nil {
		return nil
	}

	if previous != current.parent.right && isValidUplink(current.parent.right, current.parent) {
		return current.parent.right
	}

	if current.parent.right == current.parent {
		return nil
	}

	return t.nextEntryImpl(current.parent.right, previous, tree)
}

// First returns the entry with the smallest key.
func (t *Trie[K, V]) First() (K, V, bool) {
	return entryOrZero(t.firstEntry())
}

// Last returns the entry with the largest key.
func (t *Trie[K, V]) Last() (K, V, bool) {
	return entryOrZero(t.lastEntry())
}

// FirstKey returns the smallest key, and an error if the trie is empty.
func (t *Trie[K, V]) FirstKey() (K, error) {
	n := t.firstEntry()
	if n == nil {
		var zero K
		return zero, fmt.Errorf("firstKey: %w", ErrNoSuchElement)
	}
	return n.key, nil
}

// LastKey returns the largest key, and an error if the trie is empty.
func (t *Trie[K, V]) LastKey() (K, error) {
	n := t.lastEntry()
	if n == nil {
		var zero K
		return zero, fmt.Errorf("lastKey: %w", ErrNoSuchElement)
	}
	return n.key, nil
}

// previousEntry returns the entry lexicographically before start.
//
//   - If start.predecessor's right child is start: that predecessor's left,
//     if it's a valid uplink; otherwise follow right from it.
//   - Otherwise climb through parents until one is reached by a left-hand
//     child link, then apply the same left/follow-right rule to its parent.
func (t *Trie[K, V]) previousEntry(start *node[K, V]) *node[K, V] {
	if start.predecessor == nil {
		panic(&InvariantError{Op: "previousEntry", Msg: "node has no predecessor"})
	}

	if start.predecessor.right == start {
		if isValidUplink(start.predecessor.left, start.predecessor) {
			return start.predecessor.left
		}
		return t.followRight(start.predecessor.left)
	}

	n := start.predecessor
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}

	if n.parent == nil {
		return nil
	}

	if isValidUplink(n.parent.left, n.parent) {
		if n.parent.left == t.root {
			if t.root.isEmpty() {
				return nil
			}
			return t.root
		}
		return n.parent.left
	}
	return t.followRight(n.parent.left)
}
