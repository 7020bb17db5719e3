package patricia

import "fmt"

// iterCore is the fail-fast bookkeeping shared by every iterator shape this
// package exposes: a modCount snapshot taken at construction, the next node
// to hand out, the node last handed out (for Remove), and a findNext hook
// that lets callers scope the walk (whole trie vs. a prefix subtree) without
// duplicating the fail-fast/remove machinery.
type iterCore[K any, V any] struct {
	trie             *Trie[K, V]
	expectedModCount int
	next             *node[K, V]
	current          *node[K, V]
	findNext         func(prior *node[K, V]) *node[K, V]
}

func (c *iterCore[K, V]) hasNext() bool {
	return c.next != nil
}

func (c *iterCore[K, V]) peek() *node[K, V] {
	return c.next
}

func (c *iterCore[K, V]) advance() (*node[K, V], error) {
	if c.expectedModCount != c.trie.modCount {
		return nil, fmt.Errorf("next: %w", ErrConcurrentModification)
	}
	e := c.next
	if e == nil {
		return nil, fmt.Errorf("next: %w", ErrNoSuchElement)
	}
	c.next = c.findNext(e)
	c.current = e
	return e, nil
}

func (c *iterCore[K, V]) remove() error {
	if c.current == nil {
		return fmt.Errorf("remove: %w", ErrIllegalArgument)
	}
	if c.expectedModCount != c.trie.modCount {
		return fmt.Errorf("remove: %w", ErrConcurrentModification)
	}
	n := c.current
	c.current = nil
	c.trie.removeNode(n)
	c.expectedModCount = c.trie.modCount
	return nil
}

// EntryIterator walks entries in sorted order.
type EntryIterator[K any, V any] struct {
	core *iterCore[K, V]
}

// Entries returns a fail-fast iterator over every entry, in sorted order.
func (t *Trie[K, V]) Entries() *EntryIterator[K, V] {
	core := &iterCore[K, V]{trie: t, expectedModCount: t.modCount, next: t.nextEntry(nil)}
	core.findNext = func(prior *node[K, V]) *node[K, V] { return t.nextEntry(prior) }
	return &EntryIterator[K, V]{core: core}
}

func (it *EntryIterator[K, V]) HasNext() bool { return it.core.hasNext() }

func (it *EntryIterator[K, V]) Next() (Entry[K, V], error) {
	n, err := it.core.advance()
	if err != nil {
		var zero Entry[K, V]
		return zero, err
	}
	return n.toEntry(), nil
}

func (it *EntryIterator[K, V]) Remove() error { return it.core.remove() }

// KeyIterator walks keys in sorted order.
type KeyIterator[K any, V any] struct {
	inner *EntryIterator[K, V]
}

// Keys returns a fail-fast iterator over every key, in sorted order.
func (t *Trie[K, V]) Keys() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{inner: t.Entries()}
}

func (it *KeyIterator[K, V]) HasNext() bool { return it.inner.HasNext() }

func (it *KeyIterator[K, V]) Next() (K, error) {
	e, err := it.inner.Next()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.key, nil
}

func (it *KeyIterator[K, V]) Remove() error { return it.inner.Remove() }

// ValueIterator walks values in key-sorted order.
type ValueIterator[K any, V any] struct {
	inner *EntryIterator[K, V]
}

// Values returns a fail-fast iterator over every value, in key-sorted order.
func (t *Trie[K, V]) Values() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{inner: t.Entries()}
}

func (it *ValueIterator[K, V]) HasNext() bool { return it.inner.HasNext() }

func (it *ValueIterator[K, V]) Next() (V, error) {
	e, err := it.inner.Next()
	if err != nil {
		var zero V
		return zero, err
	}
	return e.value, nil
}

func (it *ValueIterator[K, V]) Remove() error { return it.inner.Remove() }

// PrefixIterator walks the entries under a prefix subtree in sorted order.
// Its Remove relocates the subtree boundary if the removed entry was the
// subtree root itself, matching the live-view contract of GetPrefixedBy*.
type PrefixIterator[K any, V any] struct {
	core         *iterCore[K, V]
	trie         *Trie[K, V]
	prefix       K
	offset       int
	lengthInBits int
	subtree      *node[K, V]
	lastOne      bool
}

func (t *Trie[K, V]) newPrefixIterator(startScan *node[K, V], prefix K, offset, lengthInBits int) *PrefixIterator[K, V] {
	p := &PrefixIterator[K, V]{trie: t, prefix: prefix, offset: offset, lengthInBits: lengthInBits, subtree: startScan}
	core := &iterCore[K, V]{trie: t, expectedModCount: t.modCount, next: t.followLeft(startScan)}
	core.findNext = func(prior *node[K, V]) *node[K, V] { return t.nextEntryInSubtree(prior, p.subtree) }
	p.core = core
	return p
}

func (p *PrefixIterator[K, V]) HasNext() bool { return p.core.hasNext() }

func (p *PrefixIterator[K, V]) Next() (Entry[K, V], error) {
	n, err := p.core.advance()
	if err != nil {
		var zero Entry[K, V]
		return zero, err
	}
	if p.lastOne {
		p.core.next = nil
	}
	return n.toEntry(), nil
}

func (p *PrefixIterator[K, V]) Remove() error {
	needsFixing := p.core.current == p.subtree
	bitIdx := p.subtree.bitIndex

	if err := p.core.remove(); err != nil {
		return err
	}

	if bitIdx != p.subtree.bitIndex || needsFixing {
		p.subtree = p.trie.subtree(p.prefix, p.offset, p.lengthInBits)
	}
	if p.subtree != nil && p.lengthInBits >= p.subtree.bitIndex {
		p.lastOne = true
	}
	return nil
}

// RangeIterator walks entries in sorted order up to (but not including) an
// excluded boundary key, used by bounded range views whose upper bound isn't
// naturally the end of the trie.
type RangeIterator[K any, V any] struct {
	core        *iterCore[K, V]
	trie        *Trie[K, V]
	excludedKey K
	hasExcluded bool
}

func (t *Trie[K, V]) newRangeIterator(start *node[K, V], excludedKey K, hasExcluded bool) *RangeIterator[K, V] {
	core := &iterCore[K, V]{trie: t, expectedModCount: t.modCount, next: start}
	core.findNext = func(prior *node[K, V]) *node[K, V] { return t.nextEntry(prior) }
	return &RangeIterator[K, V]{core: core, trie: t, excludedKey: excludedKey, hasExcluded: hasExcluded}
}

func (r *RangeIterator[K, V]) HasNext() bool {
	n := r.core.peek()
	return n != nil && (!r.hasExcluded || r.trie.analyzer.Compare(n.key, r.excludedKey) != 0)
}

func (r *RangeIterator[K, V]) Next() (Entry[K, V], error) {
	if !r.HasNext() {
		var zero Entry[K, V]
		return zero, fmt.Errorf("next: %w", ErrNoSuchElement)
	}
	n, err := r.core.advance()
	if err != nil {
		var zero Entry[K, V]
		return zero, err
	}
	return n.toEntry(), nil
}

func (r *RangeIterator[K, V]) Remove() error { return r.core.remove() }

// singletonIterator yields exactly one entry, used when a prefix range's
// subtree root is itself the only matching entry (no descent needed).
type singletonIterator[K any, V any] struct {
	trie  *Trie[K, V]
	entry *node[K, V]
	hit   int
}

func newSingletonIterator[K any, V any](trie *Trie[K, V], entry *node[K, V]) *singletonIterator[K, V] {
	return &singletonIterator[K, V]{trie: trie, entry: entry}
}

func (s *singletonIterator[K, V]) HasNext() bool { return s.hit == 0 }

func (s *singletonIterator[K, V]) Next() (Entry[K, V], error) {
	if s.hit != 0 {
		var zero Entry[K, V]
		return zero, fmt.Errorf("next: %w", ErrNoSuchElement)
	}
	s.hit++
	return s.entry.toEntry(), nil
}

func (s *singletonIterator[K, V]) Remove() error {
	if s.hit != 1 {
		return fmt.Errorf("remove: %w", ErrIllegalArgument)
	}
	s.hit++
	s.trie.removeNode(s.entry)
	return nil
}
