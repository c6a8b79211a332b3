// Package probemap implements an open-addressing hash table.
//
// Entries live directly in a slot array. Collisions are resolved by
// probing, removals leave tombstones behind so probe chains stay intact,
// and the array doubles once occupancy crosses the max load. Hashing and
// equality of keys are supplied by a Hasher, so any key type can be
// stored, comparable or not.
//
// A Table is not safe for concurrent use.
package probemap

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	DefaultCapacity = 1024
	// MaxCapacity is the largest power of two an int can hold.
	MaxCapacity = 1 << (bits.UintSize - 2)
	// DefaultMaxLoad is the occupancy, in percent of capacity, above which
	// the table grows.
	DefaultMaxLoad = 65
)

// ErrProbeExhausted is the panic value of an insert that walked the whole
// probe sequence without finding a free slot. The resize policy keeps free
// slots around, so this only happens with a prober that does not cover
// every index.
var ErrProbeExhausted = errors.New("probemap: probe sequence exhausted")

type Table[K any, V any] struct {
	slots      []slot[K, V]
	size       int
	tombstones int
	rehashes   int

	initCapacity int
	maxLoad      int

	hasher Hasher[K]
	prober Prober
}

type Option[K any, V any] func(t *Table[K, V])

// Initial number of slots, rounded up to a power of two.
// Must be within [1, MaxCapacity].
func WithCapacity[K any, V any](capacity int) Option[K, V] {
	return func(t *Table[K, V]) {
		t.initCapacity = capacity
	}
}

// Occupancy percent above which the table grows. Must be in [1, 99].
func WithMaxLoad[K any, V any](percent int) Option[K, V] {
	return func(t *Table[K, V]) {
		t.maxLoad = percent
	}
}

// Override the default quadratic prober.
func WithProber[K any, V any](p Prober) Option[K, V] {
	return func(t *Table[K, V]) {
		t.prober = p
	}
}

// Override the hasher given to the constructor.
func WithHasher[K any, V any](h Hasher[K]) Option[K, V] {
	return func(t *Table[K, V]) {
		t.hasher = h
	}
}

// Override the default hash function of a comparable key type.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return WithHasher[K, V](f)
}

// New returns a table for a comparable key type, hashed with a seeded
// maphash unless an option says otherwise.
func New[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	return NewWithHasher[K, V](MakeComparableHasher[K](), opts...)
}

// NewWithHasher returns a table whose keys are hashed and compared by h.
func NewWithHasher[K any, V any](h Hasher[K], opts ...Option[K, V]) *Table[K, V] {
	t := &Table[K, V]{
		initCapacity: DefaultCapacity,
		maxLoad:      DefaultMaxLoad,
		hasher:       h,
		prober:       QuadraticProber{},
	}

	for _, opt := range opts {
		opt(t)
	}

	switch {
	case t.initCapacity <= 0 || t.initCapacity > MaxCapacity:
		panic(fmt.Sprintf("probemap: capacity must be within [1, %d], got %d", MaxCapacity, t.initCapacity))
	case t.maxLoad < 1 || t.maxLoad > 99:
		panic(fmt.Sprintf("probemap: max load must be within [1, 99], got %d", t.maxLoad))
	case t.hasher == nil:
		panic("probemap: nil hasher")
	case t.prober == nil:
		panic("probemap: nil prober")
	}

	t.slots = makeSlots[K, V](NextPowerOf2(t.initCapacity))

	return t
}

// Number of entries.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Number of slots.
func (t *Table[K, V]) Cap() int {
	return len(t.slots)
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Insert stores value under key. If key was already present, its value is
// replaced and the previous one is returned with true.
func (t *Table[K, V]) Insert(key K, value V) (V, bool) {
	t.ensureCapacity()

	return t.insert(key, value)
}

func (t *Table[K, V]) insert(key K, value V) (V, bool) {
	var target *slot[K, V]

walk:
	for idx := range Sequence(t.prober, t.hasher.Hash(key), len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if target == nil {
				target = s
			}
			break walk

		case slotTombstone:
			// Reuse the first one, but only once the key is known to be
			// absent further down the chain.
			if target == nil {
				target = s
			}

		case slotOccupied:
			if t.hasher.Equal(s.key, key) {
				old := s.value
				s.value = value

				return old, true
			}
		}
	}

	if target == nil {
		panic(fmt.Errorf("%w: capacity %d, size %d, tombstones %d",
			ErrProbeExhausted, len(t.slots), t.size, t.tombstones))
	}

	if target.state == slotTombstone {
		t.tombstones--
	}

	target.occupy(key, value)
	t.size++

	var zero V
	return zero, false
}

// lookup returns the slot holding key, or nil.
func (t *Table[K, V]) lookup(key K) *slot[K, V] {
	for idx := range Sequence(t.prober, t.hasher.Hash(key), len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return nil
		case slotTombstone:
			continue
		case slotOccupied:
			if t.hasher.Equal(s.key, key) {
				return s
			}
		}
	}

	return nil
}

func (t *Table[K, V]) Get(key K) (V, bool) {
	if s := t.lookup(key); s != nil {
		return s.value, true
	}

	var zero V
	return zero, false
}

func (t *Table[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Remove deletes key and hands its value back to the caller.
// The slot becomes a tombstone until the next rehash.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	s := t.lookup(key)
	if s == nil {
		var zero V
		return zero, false
	}

	_, value := s.vacate()
	t.size--
	t.tombstones++

	return value, true
}

// Reset drops every entry and tombstone. Capacity is retained.
func (t *Table[K, V]) Reset() {
	clear(t.slots)

	t.size = 0
	t.tombstones = 0
}
