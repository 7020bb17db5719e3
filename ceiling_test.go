package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ceilingTestTrie() *Trie[string, int] {
	trie := newStringTrie()
	for i, w := range []string{"b", "d", "f", "h"} {
		_, _, _ = trie.Put(w, i)
	}
	return trie
}

func TestTrieCeilingExactAndBetween(t *testing.T) {
	trie := ceilingTestTrie()

	k, _, ok := trie.Ceiling("d")
	require.True(t, ok)
	require.Equal(t, "d", k)

	k, _, ok = trie.Ceiling("c")
	require.True(t, ok)
	require.Equal(t, "d", k)

	_, _, ok = trie.Ceiling("z")
	require.False(t, ok)

	k, _, ok = trie.Ceiling("a")
	require.True(t, ok)
	require.Equal(t, "b", k)
}

func TestTrieFloorExactAndBetween(t *testing.T) {
	trie := ceilingTestTrie()

	k, _, ok := trie.Floor("d")
	require.True(t, ok)
	require.Equal(t, "d", k)

	k, _, ok = trie.Floor("e")
	require.True(t, ok)
	require.Equal(t, "d", k)

	_, _, ok = trie.Floor("a")
	require.False(t, ok)
}

func TestTrieHigherSkipsExactMatch(t *testing.T) {
	trie := ceilingTestTrie()

	k, _, ok := trie.Higher("d")
	require.True(t, ok)
	require.Equal(t, "f", k)

	k, _, ok = trie.Higher("a")
	require.True(t, ok)
	require.Equal(t, "b", k)

	_, _, ok = trie.Higher("h")
	require.False(t, ok)
}

func TestTrieLowerSkipsExactMatch(t *testing.T) {
	trie := ceilingTestTrie()

	k, _, ok := trie.Lower("d")
	require.True(t, ok)
	require.Equal(t, "b", k)

	_, _, ok = trie.Lower("b")
	require.False(t, ok)
}

func TestTrieCeilingFloorDoNotPerturbModCount(t *testing.T) {
	trie := ceilingTestTrie()
	before := trie.modCount
	_, _, _ = trie.Ceiling("c")
	_, _, _ = trie.Floor("e")
	_, _, _ = trie.Higher("b")
	_, _, _ = trie.Lower("f")
	require.Equal(t, before, trie.modCount, "probe-insert/remove must roll back modCount exactly")
	require.Equal(t, 4, trie.Size())
}
