// Package patriciasync wraps a *patricia.Trie behind a mutex, for callers
// that share one trie across goroutines and would otherwise have to manage
// their own critical sections around every read and write.
package patriciasync

import (
	"sync"

	"github.com/WilliamMorake/patricia-trie"
)

// Trie delegates every operation to an inner *patricia.Trie under a single
// mutex. It does not attempt reader/writer separation: PATRICIA lookups walk
// and sometimes rewrite the uplink chain's cached state, so a plain mutex is
// the only safe option (a RWMutex would let two "reads" race).
type Trie[K any, V any] struct {
	mu       sync.Mutex
	delegate *patricia.Trie[K, V]
}

// New wraps delegate for concurrent access. Panics if delegate is nil.
func New[K any, V any](delegate *patricia.Trie[K, V]) *Trie[K, V] {
	if delegate == nil {
		panic("patriciasync: nil delegate")
	}
	return &Trie[K, V]{delegate: delegate}
}

func (t *Trie[K, V]) Put(key K, value V) (V, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Put(key, value)
}

func (t *Trie[K, V]) Get(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Get(key)
}

func (t *Trie[K, V]) Remove(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Remove(key)
}

func (t *Trie[K, V]) ContainsKey(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.ContainsKey(key)
}

func (t *Trie[K, V]) ContainsValue(value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.ContainsValue(value)
}

func (t *Trie[K, V]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Size()
}

func (t *Trie[K, V]) IsEmpty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.IsEmpty()
}

func (t *Trie[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.delegate.Clear()
}

func (t *Trie[K, V]) First() (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.First()
}

func (t *Trie[K, V]) Last() (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Last()
}

func (t *Trie[K, V]) Ceiling(key K) (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Ceiling(key)
}

func (t *Trie[K, V]) Floor(key K) (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Floor(key)
}

func (t *Trie[K, V]) Higher(key K) (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Higher(key)
}

func (t *Trie[K, V]) Lower(key K) (K, V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Lower(key)
}

// Select runs cursor under the wrapper's lock, matching the Java original's
// choice to hold its monitor for the whole select() call rather than just
// the bookkeeping around it.
func (t *Trie[K, V]) Select(key K, cursor patricia.Cursor[K, V]) (patricia.Entry[K, V], bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.SelectWithCursor(key, cursor)
}

func (t *Trie[K, V]) Traverse(cursor patricia.Cursor[K, V]) (patricia.Entry[K, V], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delegate.Traverse(cursor)
}
