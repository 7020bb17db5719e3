package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrieFirstLastEmpty(t *testing.T) {
	trie := newStringTrie()
	_, _, ok := trie.First()
	require.False(t, ok)
	_, _, ok = trie.Last()
	require.False(t, ok)

	_, err := trie.FirstKey()
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = trie.LastKey()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestTrieFirstLast(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"delta", "alpha", "charlie", "bravo"} {
		_, _, _ = trie.Put(w, i)
	}
	k, _, ok := trie.First()
	require.True(t, ok)
	require.Equal(t, "alpha", k)

	k, _, ok = trie.Last()
	require.True(t, ok)
	require.Equal(t, "delta", k)
}

func TestTrieEntriesYieldsSortedOrder(t *testing.T) {
	trie := newStringTrie()
	words := []string{"delta", "alpha", "charlie", "bravo", "alphabet"}
	for i, w := range words {
		_, _, _ = trie.Put(w, i)
	}

	var got []string
	it := trie.Entries()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e.GetKey())
	}

	want := append([]string{}, words...)
	sortStrings(want)
	require.Equal(t, want, got)
}

func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}

func TestTriePreviousEntryMatchesReverseEntries(t *testing.T) {
	trie := newStringTrie()
	words := []string{"delta", "alpha", "charlie", "bravo", "alphabet"}
	for i, w := range words {
		_, _, _ = trie.Put(w, i)
	}

	last := trie.lastEntry()
	var gotReverse []string
	for n := last; n != nil; n = trie.previousEntry(n) {
		gotReverse = append(gotReverse, n.key)
	}

	want := append([]string{}, words...)
	sortStrings(want)
	for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
		want[i], want[j] = want[j], want[i]
	}
	require.Equal(t, want, gotReverse)
}
