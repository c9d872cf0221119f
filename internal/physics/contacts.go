package physics

import (
	"cmp"
	"slices"
)

// Pair is an unordered contact between two bodies, stored smaller key first.
type Pair[K cmp.Ordered] struct {
	A, B K
}

func MakePair[K cmp.Ordered](a, b K) Pair[K] {
	if b < a {
		return Pair[K]{A: b, B: a}
	}
	return Pair[K]{A: a, B: b}
}

// ContactTracker turns per-step overlap sets into enter/exit transitions.
//
//	tracker.Begin()
//	for each overlapping pair { tracker.Touch(a, b) }
//	entered, exited := tracker.End()
type ContactTracker[K cmp.Ordered] struct {
	active  map[Pair[K]]bool // contacts from last step
	current map[Pair[K]]bool // contacts this step
}

func NewContactTracker[K cmp.Ordered]() *ContactTracker[K] {
	return &ContactTracker[K]{
		active:  make(map[Pair[K]]bool),
		current: make(map[Pair[K]]bool),
	}
}

func (c *ContactTracker[K]) Begin() {
	clear(c.current)
}

func (c *ContactTracker[K]) Touch(a, b K) {
	c.current[MakePair(a, b)] = true
}

// End closes the step and returns pairs that started and stopped touching,
// sorted for deterministic delivery.
func (c *ContactTracker[K]) End() (entered, exited []Pair[K]) {
	for p := range c.current {
		if !c.active[p] {
			entered = append(entered, p)
		}
	}
	for p := range c.active {
		if !c.current[p] {
			exited = append(exited, p)
		}
	}
	c.active, c.current = c.current, c.active
	sortPairs(entered)
	sortPairs(exited)
	return entered, exited
}

// Touching reports whether the pair was in contact at the end of the last step.
func (c *ContactTracker[K]) Touching(a, b K) bool {
	return c.active[MakePair(a, b)]
}

func (c *ContactTracker[K]) Reset() {
	clear(c.active)
	clear(c.current)
}

func sortPairs[K cmp.Ordered](pairs []Pair[K]) {
	slices.SortFunc(pairs, func(x, y Pair[K]) int {
		if r := cmp.Compare(x.A, y.A); r != 0 {
			return r
		}
		return cmp.Compare(x.B, y.B)
	})
}
