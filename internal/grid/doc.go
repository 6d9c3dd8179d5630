// Package grid holds the two-dimensional data model that gridfill repairs.
//
// A Grid is a fixed rows x columns array of optional float64 values. Known
// values are stored in a gonum dense matrix and a parallel mask records which
// cells currently hold a value. Cells without a value are "missing".
//
// Key components:
//   - Coord: a (row, column) position
//   - Cell: an optional value as seen by callers
//   - Direction: one of the four cardinal scan directions
//   - Grid.Slice: a copied-out line of cells from an origin, closest first
package grid
