package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericKeyAnalyzerIsBitSet(t *testing.T) {
	a := NumericKeyAnalyzer[uint8]{Bits: 8}
	require.True(t, a.IsBitSet(0x80, 0, 8))
	require.False(t, a.IsBitSet(0x80, 1, 8))
	require.False(t, a.IsBitSet(0x80, 8, 8))
}

func TestNumericKeyAnalyzerBitIndex(t *testing.T) {
	a := NumericKeyAnalyzer[uint8]{Bits: 8}
	require.Equal(t, EqualBitKey, a.BitIndex(uint8(5), 0, 8, uint8(5), 0, 8))
	require.Equal(t, 0, a.BitIndex(uint8(0x80), 0, 8, uint8(0x00), 0, 8))
	require.Equal(t, 7, a.BitIndex(uint8(0x01), 0, 8, uint8(0x00), 0, 8))
}

func TestNumericKeyAnalyzerIsPrefix(t *testing.T) {
	a := NumericKeyAnalyzer[uint16]{Bits: 16}
	require.True(t, a.IsPrefix(0xABCD, 0, 8, 0xAB00))
	require.False(t, a.IsPrefix(0xABCD, 0, 8, 0xAC00))
	require.True(t, a.IsPrefix(0xABCD, 0, 0, 0x0000))
}

func TestNumericKeyAnalyzerCompare(t *testing.T) {
	a := NumericKeyAnalyzer[uint32]{Bits: 32}
	require.Negative(t, a.Compare(1, 2))
	require.Positive(t, a.Compare(2, 1))
	require.Zero(t, a.Compare(2, 2))
}

func TestNumericKeyAnalyzerTrieRoundTrip(t *testing.T) {
	trie := New[uint32, string](NumericKeyAnalyzer[uint32]{Bits: 32})
	keys := []uint32{1, 2, 3, 100, 1000, 0xFFFFFFFF, 0x80000000}
	for i, k := range keys {
		_, had, err := trie.Put(k, "v")
		require.NoError(t, err)
		require.False(t, had)
		_ = i
	}
	require.Equal(t, len(keys), trie.Size())
	for _, k := range keys {
		v, ok := trie.Get(k)
		require.True(t, ok)
		require.Equal(t, "v", v)
	}
}
