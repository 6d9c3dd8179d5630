package grid

import "fmt"

// Coord is a zero-based (row, column) position in a grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Cell is a grid value that may be missing.
type Cell struct {
	// Value is meaningful only when Known is true
	Value float64

	// Known reports whether the cell holds a value
	Known bool
}

// Missing is the zero Cell.
var Missing = Cell{}

// Value returns a known cell holding v.
func Value(v float64) Cell {
	return Cell{Value: v, Known: true}
}

// Direction is a cardinal scan direction away from an origin cell.
type Direction int

// Scan directions.
const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in the order repairs report them.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Offset returns the coordinate steps cells away from origin along d.
func (d Direction) Offset(origin Coord, steps int) Coord {
	switch d {
	case Left:
		return Coord{Row: origin.Row, Col: origin.Col - steps}
	case Right:
		return Coord{Row: origin.Row, Col: origin.Col + steps}
	case Up:
		return Coord{Row: origin.Row - steps, Col: origin.Col}
	case Down:
		return Coord{Row: origin.Row + steps, Col: origin.Col}
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", int(d)))
	}
}
