package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrRagged indicates rows of differing lengths were supplied.
var ErrRagged = errors.New("rows have inconsistent lengths")

// Grid is a rectangular array of optional float64 values.
// Its dimensions never change after construction.
type Grid struct {
	rows, cols int

	// values is nil when the grid has no cells
	values *mat.Dense
	known  []bool
}

// New returns a rows x cols grid in which every cell is missing.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		known: make([]bool, rows*cols),
	}
	if rows > 0 && cols > 0 {
		g.values = mat.NewDense(rows, cols, nil)
	}
	return g
}

// FromRows builds a grid from row-major cells. All rows must have the same length.
func FromRows(rows [][]Cell) (*Grid, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", i, len(row), cols, ErrRagged)
		}
	}

	g := New(len(rows), cols)
	for i, row := range rows {
		for j, cell := range row {
			if cell.Known {
				g.Set(Coord{Row: i, Col: j}, cell.Value)
			}
		}
	}
	return g, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. It panics if c is outside the grid.
func (g *Grid) At(c Coord) Cell {
	i := g.index(c)
	if !g.known[i] {
		return Missing
	}
	return Value(g.values.At(c.Row, c.Col))
}

// Set stores v at c and marks the cell known.
func (g *Grid) Set(c Coord, v float64) {
	i := g.index(c)
	g.values.Set(c.Row, c.Col, v)
	g.known[i] = true
}

// MissingCoords returns every missing coordinate in row-major order.
func (g *Grid) MissingCoords() []Coord {
	var coords []Coord
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.known[r*g.cols+c] {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

// CountMissing returns the number of missing cells.
func (g *Grid) CountMissing() int {
	n := 0
	for _, k := range g.known {
		if !k {
			n++
		}
	}
	return n
}

// Slice copies the cells along d from origin, closest first.
// The origin itself is never included; a direction running off the edge
// yields an empty slice.
func (g *Grid) Slice(origin Coord, d Direction) []Cell {
	var n int
	switch d {
	case Left:
		n = origin.Col
	case Right:
		n = g.cols - origin.Col - 1
	case Up:
		n = origin.Row
	case Down:
		n = g.rows - origin.Row - 1
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", int(d)))
	}
	if n <= 0 {
		return nil
	}

	out := make([]Cell, n)
	for k := range out {
		out[k] = g.At(d.Offset(origin, k+1))
	}
	return out
}

// Rows returns a row-major copy of every cell.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		for c := range out[r] {
			out[r][c] = g.At(Coord{Row: r, Col: c})
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		known: append([]bool(nil), g.known...),
	}
	if g.values != nil {
		cp.values = mat.DenseCopyOf(g.values)
	}
	return cp
}

// Equal reports whether both grids have the same shape, mask and known values.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.known {
		if g.known[i] != other.known[i] {
			return false
		}
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.known[r*g.cols+c] && g.values.At(r, c) != other.values.At(r, c) {
				return false
			}
		}
	}
	return true
}

func (g *Grid) index(c Coord) int {
	if !g.Contains(c) {
		panic(fmt.Sprintf("grid: coordinate %s outside %dx%d grid", c, g.rows, g.cols))
	}
	return c.Row*g.cols + c.Col
}
