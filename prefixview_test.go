package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPrefixedByReturnsOnlyMatchingEntries(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"apple", "app", "application", "banana"} {
		_, _, _ = trie.Put(w, i)
	}

	view, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)

	var got []string
	it := view.Entries()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e.GetKey())
	}
	sortStrings(got)
	require.Equal(t, []string{"app", "apple", "application"}, got)
	require.Equal(t, 3, view.Size())
}

func TestGetPrefixedByEmptyWhenNoMatch(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("apple", 1)

	view, err := trie.GetPrefixedBy("cherry")
	require.NoError(t, err)
	require.Equal(t, 0, view.Size())

	it := view.Entries()
	require.False(t, it.HasNext())
}

func TestGetPrefixedByRejectsPrefixLongerThanKey(t *testing.T) {
	trie := newStringTrie()
	_, err := trie.GetPrefixedByBits("ab", 32)
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestPrefixMapPutRejectsNonMatchingKey(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("apple", 1)

	view, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)

	_, _, err = view.Put("banana", 2)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, _, err = view.Put("application", 3)
	require.NoError(t, err)
	require.True(t, trie.ContainsKey("application"))
}

func TestPrefixMapReflectsLiveMutation(t *testing.T) {
	trie := newStringTrie()
	_, _, _ = trie.Put("app", 1)

	view, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)
	require.Equal(t, 1, view.Size())

	_, _, _ = trie.Put("apple", 2)
	require.Equal(t, 2, view.Size())

	_, _, _ = trie.Put("application", 3)
	require.Equal(t, 3, view.Size())

	trie.Remove("apple")
	require.Equal(t, 2, view.Size())
}

func TestPrefixMapFirstAndLastKey(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"app", "apple", "application", "apply"} {
		_, _, _ = trie.Put(w, i)
	}

	view, err := trie.GetPrefixedBy("app")
	require.NoError(t, err)

	first, err := view.FirstKey()
	require.NoError(t, err)
	last, err := view.LastKey()
	require.NoError(t, err)

	words := []string{"app", "apple", "application", "apply"}
	sortStrings(words)
	require.Equal(t, words[0], first)
	require.Equal(t, words[len(words)-1], last)
}
