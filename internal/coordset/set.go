// Package coordset provides an insertion-ordered set of grid coordinates.
//
// Membership tests are map lookups. Iteration and First follow insertion
// order, and removing an element never reorders the rest. The repair
// scheduler relies on both properties to process missing cells in a fixed
// discovery order.
package coordset

import "github.com/danieljhkim/gridfill/internal/grid"

// Set is an ordered set of coordinates. The zero value is ready to use.
type Set struct {
	// index maps a live coordinate to its slot in order
	index map[grid.Coord]int
	order []grid.Coord
	// head is the first slot that may still be live
	head int
}

// New returns a set holding coords in the given order. Duplicates keep their
// first position.
func New(coords ...grid.Coord) *Set {
	s := &Set{index: make(map[grid.Coord]int, len(coords))}
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// FromGrid returns the missing coordinates of g in row-major order.
func FromGrid(g *grid.Grid) *Set {
	return New(g.MissingCoords()...)
}

// Add appends c if it is not already present and reports whether it was added.
func (s *Set) Add(c grid.Coord) bool {
	if s.index == nil {
		s.index = make(map[grid.Coord]int)
	}
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = len(s.order)
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c is in the set.
func (s *Set) Contains(c grid.Coord) bool {
	_, ok := s.index[c]
	return ok
}

// Remove deletes c and reports whether it was present.
func (s *Set) Remove(c grid.Coord) bool {
	if _, ok := s.index[c]; !ok {
		return false
	}
	delete(s.index, c)
	s.skipDead()
	return true
}

// Len returns the number of coordinates in the set.
func (s *Set) Len() int {
	return len(s.index)
}

// First returns the earliest-inserted coordinate still present.
func (s *Set) First() (grid.Coord, bool) {
	if s.Len() == 0 {
		return grid.Coord{}, false
	}
	return s.order[s.head], true
}

// PopFirst removes and returns the earliest-inserted coordinate.
func (s *Set) PopFirst() (grid.Coord, bool) {
	c, ok := s.First()
	if ok {
		s.Remove(c)
	}
	return c, ok
}

// All returns the coordinates in insertion order.
func (s *Set) All() []grid.Coord {
	out := make([]grid.Coord, 0, s.Len())
	for i := s.head; i < len(s.order); i++ {
		if s.live(i) {
			out = append(out, s.order[i])
		}
	}
	return out
}

func (s *Set) live(slot int) bool {
	i, ok := s.index[s.order[slot]]
	return ok && i == slot
}

// skipDead advances head past removed slots and compacts once the set drains.
func (s *Set) skipDead() {
	for s.head < len(s.order) && !s.live(s.head) {
		s.head++
	}
	if len(s.index) == 0 {
		s.order = s.order[:0]
		s.head = 0
	}
}
