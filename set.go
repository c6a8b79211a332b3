package probemap

import "iter"

// Set is a Table that stores only keys.
type Set[K any] struct {
	t *Table[K, struct{}]
}

func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{t: New[K, struct{}](opts...)}
}

func NewSetWithHasher[K any](h Hasher[K], opts ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{t: NewWithHasher[K, struct{}](h, opts...)}
}

// Add puts key in the set and reports whether it was not there before.
func (s *Set[K]) Add(key K) bool {
	_, replaced := s.t.Insert(key, struct{}{})
	return !replaced
}

func (s *Set[K]) Has(key K) bool {
	return s.t.Contains(key)
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.t.Remove(key)
	return ok
}

func (s *Set[K]) Len() int {
	return s.t.Len()
}

func (s *Set[K]) Reset() {
	s.t.Reset()
}

func (s *Set[K]) Compact() {
	s.t.Compact()
}

func (s *Set[K]) Stats() Stats {
	return s.t.Stats()
}

func (s *Set[K]) All() iter.Seq[K] {
	return s.t.Keys()
}
