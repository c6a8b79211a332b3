package probemap

import "iter"

// Prober decides the order in which slots are visited for a given hash.
//
// Index returns the i-th candidate of a probe that starts at start, for
// i in [0, capacity). The first candidate must be start itself, and the
// first capacity candidates should visit every index exactly once.
// The table never relies on the latter: every walk is bounded by capacity
// steps, so a prober that revisits indices only degrades into misses.
type Prober interface {
	Index(start, i, capacity uint64) uint64
}

// LinearProber visits start, start+1, start+2, ... wrapping around.
// It covers every index for any capacity.
type LinearProber struct{}

func (LinearProber) Index(start, i, capacity uint64) uint64 {
	return (start + i) % capacity
}

// QuadraticProber steps by triangular numbers: start, start+1, start+3,
// start+6, ... It covers every index when capacity is a power of two,
// which the table guarantees.
type QuadraticProber struct{}

func (QuadraticProber) Index(start, i, capacity uint64) uint64 {
	return (start + i*(i+1)/2) % capacity
}

// Sequence yields the capacity candidates p produces for hash.
// The first one is hash mod capacity.
func Sequence(p Prober, hash uint64, capacity int) iter.Seq[int] {
	return func(yield func(int) bool) {
		c := uint64(capacity)
		if c == 0 {
			return
		}

		start := hash % c
		for i := range c {
			if !yield(int(p.Index(start, i, c))) {
				return
			}
		}
	}
}
