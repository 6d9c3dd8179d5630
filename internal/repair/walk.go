package repair

import "github.com/danieljhkim/gridfill/internal/grid"

// Membership reports whether a coordinate is still waiting to be resolved.
type Membership interface {
	Contains(c grid.Coord) bool
}

// Walk returns the first usable value in slice.
//
// slice must be ordered closest-first and start one step away from origin
// along dir, as produced by grid.Grid.Slice. The cell at position k is usable
// when it holds a value and the coordinate k steps from origin is not in
// missing. For k = 0 that coordinate is origin itself, so a pending cell
// shadows the cell directly behind it. The second result is false when the
// slice is empty or no cell is usable.
func Walk(slice []grid.Cell, dir grid.Direction, origin grid.Coord, missing Membership) (float64, bool) {
	for k, cell := range slice {
		if !missing.Contains(dir.Offset(origin, k)) && cell.Known {
			return cell.Value, true
		}
	}
	return 0, false
}
