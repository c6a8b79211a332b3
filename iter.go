package probemap

import "iter"

// Pair is a snapshot of one entry.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Iterator walks the occupied slots of a table in slot order, which is
// unrelated to insertion order. The table must not be modified while an
// Iterator is in use.
type Iterator[K any, V any] struct {
	slots []slot[K, V]
	pos   int
}

// Iterator returns a fresh Iterator positioned before the first entry.
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{slots: t.slots, pos: -1}
}

// Next advances to the next entry. It must be called prior to reading the
// first one, and returns false once the table is exhausted.
func (it *Iterator[K, V]) Next() bool {
	for it.pos++; it.pos < len(it.slots); it.pos++ {
		if it.slots[it.pos].state == slotOccupied {
			return true
		}
	}

	it.pos = len(it.slots)
	return false
}

func (it *Iterator[K, V]) valid() bool {
	return it.pos >= 0 && it.pos < len(it.slots)
}

func (it *Iterator[K, V]) Key() (k K) {
	if !it.valid() {
		return k
	}

	return it.slots[it.pos].key
}

func (it *Iterator[K, V]) Value() (v V) {
	if !it.valid() {
		return v
	}

	return it.slots[it.pos].value
}

func (it *Iterator[K, V]) Pair() Pair[K, V] {
	return Pair[K, V]{Key: it.Key(), Value: it.Value()}
}

// All yields every entry, leaving the table untouched.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Drain yields every entry and moves it out of the table.
//
// When the range starts the table is reset to an empty slot array of the
// same capacity, so it is empty afterwards even if the loop breaks early;
// entries not reached by then are dropped.
func (t *Table[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		drained := t.slots

		t.slots = makeSlots[K, V](len(drained))
		t.size = 0
		t.tombstones = 0

		for i := range drained {
			s := &drained[i]
			if s.state != slotOccupied {
				continue
			}

			key, value := s.key, s.value
			if !yield(key, value) {
				return
			}
		}
	}
}
