package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeySetView(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"a", "b", "c"} {
		_, _, _ = trie.Put(w, i)
	}

	ks := trie.KeySet()
	require.Equal(t, 3, ks.Size())
	require.True(t, ks.Contains("b"))
	require.True(t, ks.Remove("b"))
	require.False(t, trie.ContainsKey("b"))

	var got []string
	it := ks.Iterator()
	for it.HasNext() {
		k, err := it.Next()
		require.NoError(t, err)
		got = append(got, k)
	}
	require.Equal(t, []string{"a", "c"}, got)
}

func TestValuesView(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"a", "b"} {
		_, _, _ = trie.Put(w, i*10)
	}
	vs := trie.ValuesOf()
	require.Equal(t, 2, vs.Size())
	require.True(t, vs.Contains(10))
	require.False(t, vs.Contains(99))
}

func TestEntrySetView(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("a", 1)
	es := trie.EntrySet()
	require.Equal(t, 1, es.Size())
	es.Clear()
	require.Equal(t, 0, trie.Size())
}
