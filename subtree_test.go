package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubtreeLocatesPrefixRoot(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"apple", "app", "application", "banana"} {
		_, _, _ = trie.Put(w, i)
	}

	n := trie.subtree("app", 0, 24)
	require.NotNil(t, n)

	var got []string
	it := trie.newPrefixIterator(n, "app", 0, 24)
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e.GetKey())
	}
	sortStrings(got)
	require.Equal(t, []string{"app", "apple", "application"}, got)
}

func TestSubtreeReturnsNilForAbsentPrefix(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"apple", "banana"} {
		_, _, _ = trie.Put(w, i)
	}
	require.Nil(t, trie.subtree("cherry", 0, 48))
}

func TestSubtreeWholeTrieIsZeroLengthPrefix(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"apple", "banana", "cherry"} {
		_, _, _ = trie.Put(w, i)
	}
	n := trie.subtree("", 0, 0)
	require.NotNil(t, n)
}
