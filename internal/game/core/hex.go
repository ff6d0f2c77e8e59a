package core

import "fmt"

// Hex represents a position on the battle grid as rectangular offset
// coordinates. Odd rows are shifted half a cell to the right, so the
// neighbor offsets depend on row parity.
type Hex struct {
	Col, Row int
}

// NewHex creates a new hex coordinate with the given column and row.
func NewHex(col, row int) Hex {
	return Hex{Col: col, Row: row}
}

// String returns a string representation of the hex coordinate.
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Col, h.Row)
}

// Equal checks if two hex coordinates are equal.
func (h Hex) Equal(other Hex) bool {
	return h.Col == other.Col && h.Row == other.Row
}

// Neighbor offsets for even and odd rows. Odd rows sit half a cell to the
// right, which shifts the four diagonal neighbors by one column.
var (
	evenRowOffsets = [6]Hex{
		{Col: 1, Row: 0},   // E
		{Col: -1, Row: 0},  // W
		{Col: 0, Row: -1},  // NE
		{Col: -1, Row: -1}, // NW
		{Col: 0, Row: 1},   // SE
		{Col: -1, Row: 1},  // SW
	}
	oddRowOffsets = [6]Hex{
		{Col: 1, Row: 0},  // E
		{Col: -1, Row: 0}, // W
		{Col: 1, Row: -1}, // NE
		{Col: 0, Row: -1}, // NW
		{Col: 1, Row: 1},  // SE
		{Col: 0, Row: 1},  // SW
	}
)

// Grid describes the rectangular bounds of the battle map. All topology
// queries (neighbors, distance, paths, movement range) go through it.
type Grid struct {
	Width, Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains checks if the hex is within the grid bounds.
func (g Grid) Contains(h Hex) bool {
	return h.Col >= 0 && h.Col < g.Width && h.Row >= 0 && h.Row < g.Height
}

// Neighbors returns the up-to-six adjacent hexes of h that lie inside the
// grid. The offsets differ between even and odd rows.
func (g Grid) Neighbors(h Hex) []Hex {
	offsets := &evenRowOffsets
	if h.Row%2 != 0 {
		offsets = &oddRowOffsets
	}

	neighbors := make([]Hex, 0, 6)
	for _, o := range offsets {
		n := Hex{Col: h.Col + o.Col, Row: h.Row + o.Row}
		if g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
