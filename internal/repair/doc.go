// Package repair fills the missing cells of a grid.
//
// Each missing cell becomes the mean of the nearest resolved value found by
// walking outward in each of the four cardinal directions. Cells are handled
// in discovery order (row-major), and a value written for one cell is visible
// to every cell handled after it, so the result depends on that order.
//
// Key components:
//   - Walk: nearest resolved value along one directional slice
//   - Average: arithmetic mean with an empty input defined as 0
//   - Session: owns a grid and its missing set and resolves one cell per Step
//   - Repair: runs a Session to completion
package repair
