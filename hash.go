package swiss

import "hash/maphash"

// HashFunc hashes a key to 64 bits. It must be deterministic for equal keys;
// avalanche quality only affects probe lengths, not correctness.
type HashFunc func(uint64) uint64

func MakeDefaultHashFunc(seed maphash.Seed) HashFunc {
	return func(k uint64) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// SplitHash splits a 64-bit hash into the bucket seed (everything above bit
// 7) and the control-byte prefix (the low 7 bits with the occupied bit forced
// set, so a prefix byte can never collide with the 0x00 empty marker).
func SplitHash(hash uint64) (uint64, uint8) {
	h1 := hash >> 7
	h2 := uint8(hash&0x7F) | slotOccupied

	return h1, h2
}
