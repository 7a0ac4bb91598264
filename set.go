// Package swiss provides a fixed-capacity, insertion-and-lookup-only hash set
// for uint64 keys, built on the swiss-table control-byte layout. A lookup
// tests 8 candidate slots per probe step with word-wide bit tricks (SWAR)
// instead of per-slot branching.
package swiss

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
)

const (
	groupSize  = 8
	valueWidth = 8

	// slotOccupied is the high bit carried by every occupied control byte;
	// the low 7 bits hold the key's hash prefix. Empty slots are 0x00.
	slotOccupied = 0x80

	// maxCapacity bounds the slot count; the planned capacity must stay
	// strictly below it.
	maxCapacity = 1 << 30
)

var (
	ErrInvalidMaxSize   = errors.New("maxSize must be greater than 0")
	ErrCapacityExceeded = errors.New("requested capacity is too large")
	ErrTableFull        = errors.New("table is full")
)

// Set is a set of uint64 keys, which uses a swiss-table layout under the
// hood. It's fixed, because it never grows - the capacity is computed once
// from the maxSize it was constructed with, padded so the load factor stays
// at or below 15/16. There is no deletion and no tombstones, which is what
// makes the early-termination rule in Contains sound. Not safe for concurrent
// mutation; callers needing that must serialize access externally.
type Set struct {
	// ctrl holds one metadata byte per slot plus a groupSize-byte suffix
	// mirroring ctrl[0:groupSize], so an 8-byte group load starting at any
	// bucket index never wraps.
	ctrl []byte

	// values holds each slot's key as a little-endian uint64 at
	// [slot*valueWidth, slot*valueWidth+valueWidth), valid only while the
	// slot's control byte is occupied.
	values []byte

	capacity int
	mask     int

	size    int
	maxSize int

	hashFunc HashFunc
}

type Option func(s *Set)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(s *Set) {
		s.hashFunc = f
	}
}

// New returns a set that can hold up to maxSize keys. Both buffers start
// zeroed, i.e. all slots empty.
func New(maxSize int, opts ...Option) (*Set, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, maxSize)
	}

	capacity, err := capacityFor(maxSize)
	if err != nil {
		return nil, err
	}

	s := &Set{
		ctrl:     make([]byte, capacity+groupSize),
		values:   make([]byte, capacity*valueWidth),
		capacity: capacity,
		mask:     capacity - 1,
		maxSize:  maxSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.hashFunc == nil {
		s.hashFunc = MakeDefaultHashFunc(maphash.MakeSeed())
	}

	return s, nil
}

func (s *Set) Size() int {
	return s.size
}

func (s *Set) Capacity() int {
	return s.capacity
}

func (s *Set) MaxSize() int {
	return s.maxSize
}

// Insert puts a key in the set. Returns true if the key is new, false if it
// was already present. Fails with ErrTableFull once Size reaches MaxSize; the
// check precedes any probing, so a failed insert leaves the set untouched.
func (s *Set) Insert(key uint64) (bool, error) {
	if s.size >= s.maxSize {
		return false, ErrTableFull
	}

	h1, h2 := SplitHash(s.hashFunc(key))
	bucket := int(h1) & s.mask
	repeated := byteRepeat(h2)

	step := 1
	for {
		group := binary.LittleEndian.Uint64(s.ctrl[bucket:])

		// 1. Existing check
		matches := matchByte(group, repeated)
		for matches != 0 {
			slot := (bucket + matches.first()) & s.mask
			if s.valueAt(slot) == key {
				return false, nil
			}

			matches = matches.removeFirst()
		}

		// 2. Claim the first empty lane. An empty lane also proves the key
		// is absent from every later group on this probe path, so no further
		// duplicate checks are needed.
		if empty := matchEmpty(group); empty != 0 {
			slot := (bucket + empty.first()) & s.mask
			s.setCtrl(slot, h2)
			binary.LittleEndian.PutUint64(s.values[slot*valueWidth:], key)
			s.size++

			return true, nil
		}

		// Triangular probe math; visits every bucket of a power-of-two
		// table before repeating, and size < capacity guarantees an empty
		// lane exists.
		bucket = (bucket + step) & s.mask
		step += groupSize
	}
}

// Contains reports whether a key is present, without mutation. It runs the
// same probe sequence as Insert and stops as soon as a group contains an
// empty lane: nothing is ever relocated or deleted, so once an empty slot
// shows up in the key's deterministic probe order the key cannot exist
// further down it.
func (s *Set) Contains(key uint64) bool {
	h1, h2 := SplitHash(s.hashFunc(key))
	bucket := int(h1) & s.mask
	repeated := byteRepeat(h2)

	step := 1
	for {
		group := binary.LittleEndian.Uint64(s.ctrl[bucket:])

		// SIMD-like match
		matches := matchByte(group, repeated)
		for matches != 0 {
			if s.valueAt((bucket+matches.first())&s.mask) == key {
				return true
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(group) != 0 {
			return false
		}

		bucket = (bucket + step) & s.mask
		step += groupSize
	}
}

// Reset empties the set without reallocating, so it can be refilled.
func (s *Set) Reset() {
	clear(s.ctrl)
	s.size = 0
}

// setCtrl writes an occupied control byte, mirroring it into the wraparound
// suffix when the slot sits inside the first group.
func (s *Set) setCtrl(slot int, h2 uint8) {
	s.ctrl[slot] = h2
	if slot < groupSize {
		s.ctrl[slot+s.capacity] = h2
	}
}

func (s *Set) valueAt(slot int) uint64 {
	return binary.LittleEndian.Uint64(s.values[slot*valueWidth:])
}
