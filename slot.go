package probemap

type slotState uint8

const (
	// Never held an entry since the last rehash. Terminates a probe walk.
	slotEmpty slotState = iota
	// Held an entry that was removed. A probe walk must continue past it.
	slotTombstone
	slotOccupied
)

// slot is a single storage cell of the table.
// key and value are only meaningful while the state is slotOccupied.
type slot[K any, V any] struct {
	state slotState
	key   K
	value V
}

// occupy stores the pair and marks the slot as occupied.
func (s *slot[K, V]) occupy(key K, value V) {
	s.state = slotOccupied
	s.key = key
	s.value = value
}

// vacate turns an occupied slot into a tombstone and moves the pair out.
// Zeroing key and value drops the table's references to them.
func (s *slot[K, V]) vacate() (K, V) {
	key, value := s.key, s.value

	var (
		zeroK K
		zeroV V
	)

	s.state = slotTombstone
	s.key = zeroK
	s.value = zeroV

	return key, value
}

func makeSlots[K any, V any](capacity int) []slot[K, V] {
	// Zero value of slotState is slotEmpty.
	return make([]slot[K, V], capacity)
}
