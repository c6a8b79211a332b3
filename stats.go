package probemap

type Stats struct {
	Size                    int
	Capacity                int
	EffectiveCapacity       int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
	// Rehashes counts full rebuilds of the slot array, both growth and
	// compaction, since the table was created.
	Rehashes int
}

func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Size:                    t.size,
		Capacity:                len(t.slots),
		EffectiveCapacity:       t.EffectiveCapacity(),
		Tombstones:              t.tombstones,
		Rehashes:                t.rehashes,
		TombstonesCapacityRatio: float32(t.tombstones) / float32(len(t.slots)),
	}

	if t.size > 0 {
		s.TombstonesSizeRatio = float32(t.tombstones) / float32(t.size)
	}

	return s
}
