package patriciasync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WilliamMorake/patricia-trie"
)

func TestSyncTrieBasicOps(t *testing.T) {
	inner := patricia.New[string, int](patricia.StringKeyAnalyzer{})
	trie := New[string, int](inner)

	_, had, err := trie.Put("a", 1)
	require.NoError(t, err)
	require.False(t, had)

	v, ok := trie.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.Equal(t, 1, trie.Size())
	require.True(t, trie.ContainsKey("a"))

	v, had = trie.Remove("a")
	require.True(t, had)
	require.Equal(t, 1, v)
	require.True(t, trie.IsEmpty())
}

func TestSyncTrieConcurrentPuts(t *testing.T) {
	inner := patricia.New[string, int](patricia.StringKeyAnalyzer{})
	trie := New[string, int](inner)

	var wg sync.WaitGroup
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i, k := range keys {
		wg.Add(1)
		go func(k string, v int) {
			defer wg.Done()
			_, _, _ = trie.Put(k, v)
		}(k, i)
	}
	wg.Wait()

	require.Equal(t, len(keys), trie.Size())
	for i, k := range keys {
		v, ok := trie.Get(k)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestSyncTrieNewPanicsOnNilDelegate(t *testing.T) {
	require.Panics(t, func() {
		New[string, int](nil)
	})
}
