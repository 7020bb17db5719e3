package patricia

// NullBitKey is returned by a KeyAnalyzer's BitIndex when both keys being
// compared are logically all-zero over the relevant range: the new key
// belongs at the root rather than anywhere in the existing node graph.
const NullBitKey = -1

// EqualBitKey is returned by BitIndex when the two keys are identical over
// the relevant range: no differing bit exists, so the new key replaces an
// existing entry rather than forking the tree.
const EqualBitKey = -2

// KeyAnalyzer is the capability a Trie needs from its key type: a strategy
// for reading a key's length and individual bits, locating the first
// differing bit between two keys, testing prefix membership, and ordering
// keys. A Trie never inspects K's structure itself — every structural
// question is answered by the analyzer, which is how the same node graph
// serves strings, fixed-width integers, or any other bit-addressable key.
type KeyAnalyzer[K any] interface {
	// LengthInBits returns the number of significant bits in key.
	LengthInBits(key K) int

	// BitsPerElement returns the width, in bits, of one key element (e.g.
	// 16 for a UTF-16 code unit, 8 for a byte). The Trie uses it to convert
	// element counts to bits in GetPrefixedByElements*, and rejects prefix
	// offsets and lengths that don't land on an element boundary.
	BitsPerElement() int

	// IsBitSet reports whether the bit at bitIndex is set in key, given
	// key's total length lengthInBits.
	IsBitSet(key K, bitIndex, lengthInBits int) bool

	// BitIndex returns the index of the first bit at which a and b differ,
	// scanning a from aOffsetInBits for aLengthInBits bits and b from
	// bOffsetInBits for bLengthInBits bits. It returns NullBitKey if both
	// ranges are entirely zero, EqualBitKey if the two ranges are identical.
	BitIndex(a K, aOffsetInBits, aLengthInBits int, b K, bOffsetInBits, bLengthInBits int) int

	// IsPrefix reports whether key starts with the lengthInBits bits of
	// prefix beginning at offsetInBits.
	IsPrefix(prefix K, offsetInBits, lengthInBits int, key K) bool

	// Compare orders a and b the way a sorted iteration of the trie does:
	// negative if a < b, zero if equal, positive if a > b.
	Compare(a, b K) int
}

// IsValidBitIndex reports whether bitIndex identifies a real bit position
// (as opposed to one of the NullBitKey/EqualBitKey sentinels).
func IsValidBitIndex(bitIndex int) bool {
	return bitIndex >= 0
}

// IsNullBitKey reports whether bitIndex is the NullBitKey sentinel.
func IsNullBitKey(bitIndex int) bool {
	return bitIndex == NullBitKey
}

// IsEqualBitKey reports whether bitIndex is the EqualBitKey sentinel.
func IsEqualBitKey(bitIndex int) bool {
	return bitIndex == EqualBitKey
}
