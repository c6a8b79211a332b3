package probemap

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher is the hash and equality capability of a key type.
//
// Implementations must keep Equal(a, b) => Hash(a) == Hash(b), and must
// return the same hash for the same key for the lifetime of a table.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// HashFunc overrides the hash of a comparable key type while keeping ==
// as the equality.
type HashFunc[K comparable] func(K) uint64

func (f HashFunc[K]) Hash(key K) uint64 { return f(key) }
func (HashFunc[K]) Equal(a, b K) bool   { return a == b }

// ComparableHasher hashes any comparable key with a seeded maphash.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

func MakeComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) uint64 { return maphash.Comparable(h.seed, key) }
func (ComparableHasher[K]) Equal(a, b K) bool   { return a == b }

// StringHasher hashes string keys with xxhash.
type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }
func (StringHasher) Equal(a, b string) bool { return a == b }

// BytesHasher lets byte slices, which are not comparable, be used as keys.
// A stored slice must not be modified while it is in the table.
type BytesHasher struct{}

func (BytesHasher) Hash(key []byte) uint64 { return xxhash.Sum64(key) }
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// IntegerHasher hashes integer keys without going through memory.
// The table indexes by the low bits of the hash, so the key is mixed
// first: sequential integers would otherwise form long probe runs.
type IntegerHasher[K constraints.Integer] struct{}

func (IntegerHasher[K]) Hash(key K) uint64 { return mix64(uint64(key)) }
func (IntegerHasher[K]) Equal(a, b K) bool { return a == b }

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
