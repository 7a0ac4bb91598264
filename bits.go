package swiss

import (
	"math/bits"
)

const (
	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080
)

// bitset represents a set of matching slots within a group.
//
// The underlying representation uses one byte per lane, where each byte is
// either 0x80 if the lane matched or 0x00 otherwise. This makes it convenient
// to calculate for an entire group at once (e.g. see matchByte).
type bitset uint64

// first assumes that only the MSB of each lane can be set (e.g. bitset is the
// result of matchByte or similar) and returns the relative index of the first
// lane in the group that has the MSB set.
//
// Returns groupSize if the bitset is empty.
func (b bitset) first() int {
	return bits.TrailingZeros64(uint64(b)) >> 3
}

// removeFirst removes the first set lane (that is, resets the least
// significant set bit to 0) so iteration can continue to the next matching
// lane within the same group.
func (b bitset) removeFirst() bitset {
	return b & (b - 1)
}

// byteRepeat broadcasts a single byte across all 8 lanes of a 64-bit word.
//
//go:inline
func byteRepeat(b uint8) uint64 {
	return bitsetLSB * uint64(b)
}

// matchByte compares all 8 lanes of group against the broadcast word at once
// and returns a bitset with the MSB set in every lane that compared equal.
//
// This is the standard SWAR zero-byte test (HD 6-1) applied to the XOR of the
// two words. It has no false negatives for the byte patterns used here:
// occupied control bytes always carry 0x80 and the empty marker is 0x00.
//
//go:inline
func matchByte(group, repeated uint64) bitset {
	v := group ^ repeated
	return bitset((v - bitsetLSB) &^ v & bitsetMSB)
}

// matchEmpty: empty slots are 0x00, so this is a zero-byte match.
//
//go:inline
func matchEmpty(group uint64) bitset {
	return matchByte(group, 0)
}
