package repair

import (
	"github.com/danieljhkim/gridfill/internal/coordset"
	"github.com/danieljhkim/gridfill/internal/grid"
)

// Neighbor is the outcome of walking one direction from a repaired cell.
type Neighbor struct {
	Value float64
	Found bool
}

// Step records the resolution of a single missing cell.
type Step struct {
	// Coord is the cell that was resolved
	Coord grid.Coord

	// Up, Down, Left and Right hold the walk result for each direction
	Up    Neighbor
	Down  Neighbor
	Left  Neighbor
	Right Neighbor

	// Value is the number written into the grid
	Value float64

	// Remaining is the number of cells still missing after this step
	Remaining int
}

// Neighbor returns the walk result recorded for d.
func (s Step) Neighbor(d grid.Direction) Neighbor {
	switch d {
	case grid.Up:
		return s.Up
	case grid.Down:
		return s.Down
	case grid.Left:
		return s.Left
	default:
		return s.Right
	}
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers fn to be called after every resolved cell.
func WithObserver(fn func(Step)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// Session owns a grid and the set of its unresolved coordinates for the
// duration of one repair run. It is not safe for concurrent use.
type Session struct {
	grid     *grid.Grid
	missing  *coordset.Set
	observer func(Step)
	resolved int
}

// NewSession starts a repair run over g. When missing is nil the missing
// coordinates are discovered from g in row-major order. Otherwise missing must
// hold exactly the coordinates of g's missing cells; it is consumed by the run.
func NewSession(g *grid.Grid, missing *coordset.Set, opts ...Option) *Session {
	if missing == nil {
		missing = coordset.FromGrid(g)
	}
	s := &Session{grid: g, missing: missing}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the grid being repaired.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Pending returns the number of cells not yet resolved.
func (s *Session) Pending() int {
	return s.missing.Len()
}

// Resolved returns the number of cells resolved so far.
func (s *Session) Resolved() int {
	return s.resolved
}

// Step resolves the earliest pending coordinate. It returns false once
// nothing is left to resolve.
func (s *Session) Step() (Step, bool) {
	origin, ok := s.missing.PopFirst()
	if !ok {
		return Step{}, false
	}

	// The origin is out of the set before walking, so the cell next to it
	// is usable whenever it holds a value.
	step := Step{
		Coord: origin,
		Up:    s.walk(origin, grid.Up),
		Down:  s.walk(origin, grid.Down),
		Left:  s.walk(origin, grid.Left),
		Right: s.walk(origin, grid.Right),
	}

	found := make([]float64, 0, len(grid.Directions))
	for _, d := range grid.Directions {
		if n := step.Neighbor(d); n.Found {
			found = append(found, n.Value)
		}
	}
	step.Value = Average(found)
	s.grid.Set(origin, step.Value)

	s.resolved++
	step.Remaining = s.missing.Len()
	if s.observer != nil {
		s.observer(step)
	}
	return step, true
}

// Run resolves every pending coordinate and returns the repaired grid.
func (s *Session) Run() *grid.Grid {
	for {
		if _, ok := s.Step(); !ok {
			return s.grid
		}
	}
}

func (s *Session) walk(origin grid.Coord, d grid.Direction) Neighbor {
	v, ok := Walk(s.grid.Slice(origin, d), d, origin, s.missing)
	return Neighbor{Value: v, Found: ok}
}

// Repair fills every coordinate in missing, in insertion order, and returns g.
// A nil missing set is discovered from g. Cells with no resolved neighbour in
// any direction become 0.
func Repair(g *grid.Grid, missing *coordset.Set, opts ...Option) *grid.Grid {
	return NewSession(g, missing, opts...).Run()
}
