package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryIteratorFailsFastOnConcurrentModification(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"a", "b", "c"} {
		_, _, _ = trie.Put(w, i)
	}

	it := trie.Entries()
	require.True(t, it.HasNext())
	_, err := it.Next()
	require.NoError(t, err)

	_, _, _ = trie.Put("d", 99)

	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestEntryIteratorRemoveDeletesCurrentEntry(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"a", "b", "c"} {
		_, _, _ = trie.Put(w, i)
	}

	it := trie.Entries()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e.GetKey() == "b" {
			require.NoError(t, it.Remove())
		}
	}
	require.Equal(t, 2, trie.Size())
	require.False(t, trie.ContainsKey("b"))
}

func TestEntryIteratorRemoveWithoutAdvanceFails(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("a", 1)
	it := trie.Entries()
	require.ErrorIs(t, it.Remove(), ErrIllegalArgument)
}

func TestKeyAndValueIteratorsMirrorEntries(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"a", "b"} {
		_, _, _ = trie.Put(w, i)
	}

	keys := trie.Keys()
	var gotKeys []string
	for keys.HasNext() {
		k, err := keys.Next()
		require.NoError(t, err)
		gotKeys = append(gotKeys, k)
	}
	require.Equal(t, []string{"a", "b"}, gotKeys)

	values := trie.Values()
	var gotValues []int
	for values.HasNext() {
		v, err := values.Next()
		require.NoError(t, err)
		gotValues = append(gotValues, v)
	}
	require.Equal(t, []int{0, 1}, gotValues)
}

func TestPrefixIteratorRemoveRelocatesSubtreeRoot(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"app", "apple", "application"} {
		_, _, _ = trie.Put(w, i)
	}

	view, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)

	it := view.Entries()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e.GetKey() == "app" {
			require.NoError(t, it.Remove())
		}
	}
	require.False(t, trie.ContainsKey("app"))
	require.True(t, trie.ContainsKey("apple"))
	require.True(t, trie.ContainsKey("application"))

	view2, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)
	require.Equal(t, 2, view2.Size())
}

func TestSingletonIteratorYieldsOnceAndSupportsRemove(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("only", 1)

	view, err := trie.GetPrefixedBy("only")
	require.NoError(t, err)

	it := view.Entries()
	require.True(t, it.HasNext())
	e, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "only", e.GetKey())
	require.False(t, it.HasNext())

	require.NoError(t, it.Remove())
	require.False(t, trie.ContainsKey("only"))
	require.ErrorIs(t, it.Remove(), ErrIllegalArgument)
}
