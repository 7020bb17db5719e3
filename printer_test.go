package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrieStringListsEntriesInOrder(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"banana", "apple", "cherry"} {
		_, _, _ = trie.Put(w, i)
	}

	out := trie.String()
	require.Contains(t, out, `"apple"=1`)
	require.Contains(t, out, `"banana"=0`)
	require.Contains(t, out, `"cherry"=2`)
	require.Less(t, indexOf(out, "apple"), indexOf(out, "banana"))
	require.Less(t, indexOf(out, "banana"), indexOf(out, "cherry"))
}

func TestTrieStringEmpty(t *testing.T) {
	trie := newStringTrie()
	require.Equal(t, "", trie.String())
}

func TestTreeStringMarksAddedAndJunctionNodes(t *testing.T) {
	trie := newStringTrie()
	for i, w := range []string{"app", "apple", "application"} {
		_, _, _ = trie.Put(w, i)
	}

	withJunctions := trie.TreeString(true)
	require.Contains(t, withJunctions, "*")

	withoutJunctions := trie.TreeString(false)
	require.Contains(t, withoutJunctions, `"app"`)
	require.NotContains(t, withoutJunctions, "o ")
}

func TestTreeStringEmpty(t *testing.T) {
	trie := newStringTrie()
	out := trie.TreeString(false)
	require.Equal(t, "", out)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
