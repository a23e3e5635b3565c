package world

import "github.com/zyedidia/generic/mapset"

// PathSet is the reachable-path set carved by the random walk.
// Membership is a set; insertion order is kept so that a generator driven by
// a seeded source visits cells in the same order every run.
type PathSet struct {
	cells mapset.Set[Point]
	order []Point
}

// NewPathSet creates an empty path set.
func NewPathSet() *PathSet {
	return &PathSet{cells: mapset.New[Point]()}
}

// Add inserts p. Duplicate visits collapse.
func (s *PathSet) Add(p Point) {
	if s.cells.Has(p) {
		return
	}
	s.cells.Put(p)
	s.order = append(s.order, p)
}

// Has returns true if p is in the set.
func (s *PathSet) Has(p Point) bool {
	return s.cells.Has(p)
}

// Len returns the number of distinct cells.
func (s *PathSet) Len() int {
	return s.cells.Size()
}

// Points returns the cells in first-visit order.
func (s *PathSet) Points() []Point {
	out := make([]Point, len(s.order))
	copy(out, s.order)
	return out
}

// Each calls fn for every cell in first-visit order.
func (s *PathSet) Each(fn func(p Point)) {
	for _, p := range s.order {
		fn(p)
	}
}

// Retain drops every cell for which keep returns false and reports how many
// cells were removed.
func (s *PathSet) Retain(keep func(p Point) bool) int {
	kept := s.order[:0]
	removed := 0
	for _, p := range s.order {
		if keep(p) {
			kept = append(kept, p)
			continue
		}
		s.cells.Remove(p)
		removed++
	}
	s.order = kept
	return removed
}
