package model

// Position identifies a cell on the grid
type Position struct {
	Col int `json:"col"` // 0-indexed from left
	Row int `json:"row"` // 0-indexed from top
}

// Grid is a rectangular board of single-character tiles, rows outer.
// In practice boards are 4x4 but nothing here assumes a fixed size.
type Grid struct {
	Cells [][]string `json:"cells"`
}

// NewGrid builds a grid from row-major cells, rejecting ragged input.
// Shape is validated here so the search never has to; an empty grid
// (or a grid of empty rows) is valid and simply yields no words.
func NewGrid(cells [][]string) (*Grid, error) {
	if len(cells) > 0 {
		width := len(cells[0])
		for _, row := range cells[1:] {
			if len(row) != width {
				return nil, ErrNonRectangularGrid
			}
		}
	}
	return &Grid{Cells: cells}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return len(g.Cells)
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows() && pos.Col >= 0 && pos.Col < g.Cols()
}

// At returns the tile character at the given position, or "" if out of bounds
func (g *Grid) At(pos Position) string {
	if !g.InBounds(pos) {
		return ""
	}
	return g.Cells[pos.Row][pos.Col]
}
