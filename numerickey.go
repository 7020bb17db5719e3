package patricia

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NumericKeyAnalyzer is a KeyAnalyzer for fixed-width unsigned integer keys,
// comparing and indexing them most-significant-bit first so the trie's
// lexicographic key order matches numeric order.
//
// BitIndex compares the two keys over all Bits bits and ignores its offset
// and length arguments; IsPrefix ignores offsetInBits and always compares
// the leading lengthInBits bits of prefix and key.
type NumericKeyAnalyzer[N constraints.Unsigned] struct {
	// Bits is the fixed width of N, e.g. 32 for uint32 or 8 for a byte-sized
	// key space. Every key analyzed by a given instance must share this width.
	Bits int
}

func (a NumericKeyAnalyzer[N]) LengthInBits(key N) int { return a.Bits }

func (a NumericKeyAnalyzer[N]) BitsPerElement() int { return a.Bits }

func (a NumericKeyAnalyzer[N]) IsBitSet(key N, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	shift := a.Bits - 1 - bitIndex
	return (key>>uint(shift))&1 != 0
}

func (a NumericKeyAnalyzer[N]) BitIndex(x N, xOffsetInBits, xLengthInBits int, y N, yOffsetInBits, yLengthInBits int) int {
	if x == y {
		if x == 0 {
			return NullBitKey
		}
		return EqualBitKey
	}

	diff := x ^ y
	leading := leadingZeros(diff, a.Bits)
	if leading >= a.Bits {
		return EqualBitKey
	}
	return leading
}

func (a NumericKeyAnalyzer[N]) IsPrefix(prefix N, offsetInBits, lengthInBits int, key N) bool {
	if lengthInBits == 0 {
		return true
	}
	shift := a.Bits - lengthInBits
	return (prefix >> uint(shift)) == (key >> uint(shift))
}

func (a NumericKeyAnalyzer[N]) Compare(x, y N) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// leadingZeros counts leading zero bits of v within a field of the given
// width, dispatching to the right math/bits helper for the underlying size.
func leadingZeros[N constraints.Unsigned](v N, width int) int {
	switch width {
	case 8:
		return bits.LeadingZeros8(uint8(v))
	case 16:
		return bits.LeadingZeros16(uint16(v))
	case 32:
		return bits.LeadingZeros32(uint32(v))
	default:
		return bits.LeadingZeros64(uint64(v)) - (64 - width)
	}
}
