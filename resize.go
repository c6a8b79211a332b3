package probemap

// ensureCapacity runs before every insert, once entries plus tombstones
// would push occupancy over the max load.
//
// Dropping tombstones in place only pays off when it frees a real share
// of the slots: the entries must fit in half of the max load, so at least
// the other half is consumed by inserts before the next rebuild. Otherwise
// the array doubles. Either way every rebuild is followed by a number of
// inserts proportional to capacity, and at least one empty slot remains
// after the insert, which keeps every probe walk terminating.
func (t *Table[K, V]) ensureCapacity() {
	limit := t.maxLoad * len(t.slots)

	if (t.size+t.tombstones+1)*100 <= limit {
		return
	}

	if (t.size+1)*100*2 <= limit {
		t.rehash(len(t.slots))
		return
	}

	t.rehash(len(t.slots) * 2)
}

// rehash moves every entry into a fresh array of the given capacity.
// Tombstones are not carried over. The table is only updated once every
// entry has been placed, so an exhausted probe leaves it intact.
func (t *Table[K, V]) rehash(capacity int) {
	fresh := Table[K, V]{
		slots:  makeSlots[K, V](capacity),
		hasher: t.hasher,
		prober: t.prober,
	}

	for i := range t.slots {
		if s := &t.slots[i]; s.state == slotOccupied {
			fresh.insert(s.key, s.value)
		}
	}

	t.slots = fresh.slots
	t.size = fresh.size
	t.tombstones = 0
	t.rehashes++
}

// Compact drops all tombstones by rehashing at the current capacity.
func (t *Table[K, V]) Compact() {
	if t.tombstones == 0 {
		return
	}

	t.rehash(len(t.slots))
}

// EffectiveCapacity is the number of entries the table holds before the
// next insert makes it grow.
func (t *Table[K, V]) EffectiveCapacity() int {
	return t.maxLoad * len(t.slots) / 100
}
