package grid

// Rect is an axis-aligned rectangle of cells, addressed by its top-left
// corner. It is the footprint of a single room.
type Rect struct {
	Col, Row      int // Top-left corner position
	Width, Height int // Dimensions in cells
}

// Center returns the cell at the center of the rectangle.
func (r Rect) Center() Cell {
	return Cell{Col: r.Col + r.Width/2, Row: r.Row + r.Height/2}
}

// Contains returns true if the given cell is inside the rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.Col >= r.Col && c.Col < r.Col+r.Width &&
		c.Row >= r.Row && c.Row < r.Row+r.Height
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.Col < other.Col+other.Width &&
		r.Col+r.Width > other.Col &&
		r.Row < other.Row+other.Height &&
		r.Row+r.Height > other.Row
}

// In returns true if the rectangle lies fully inside the grid.
func (r Rect) In(g Grid) bool {
	return r.Col >= 0 && r.Row >= 0 &&
		r.Col+r.Width <= g.Columns && r.Row+r.Height <= g.Rows
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Cells returns every cell covered by the rectangle, row-major.
func (r Rect) Cells() []Cell {
	cells := make([]Cell, 0, r.Area())
	for row := r.Row; row < r.Row+r.Height; row++ {
		for col := r.Col; col < r.Col+r.Width; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// BoundaryCells returns the cells on the rectangle's perimeter, in a fixed
// clockwise order starting at the top-left corner.
func (r Rect) BoundaryCells() []Cell {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	if r.Width == 1 || r.Height == 1 {
		return r.Cells()
	}

	cells := make([]Cell, 0, 2*r.Width+2*r.Height-4)
	for col := r.Col; col < r.Col+r.Width; col++ {
		cells = append(cells, Cell{Col: col, Row: r.Row})
	}
	for row := r.Row + 1; row < r.Row+r.Height; row++ {
		cells = append(cells, Cell{Col: r.Col + r.Width - 1, Row: row})
	}
	for col := r.Col + r.Width - 2; col >= r.Col; col-- {
		cells = append(cells, Cell{Col: col, Row: r.Row + r.Height - 1})
	}
	for row := r.Row + r.Height - 2; row > r.Row; row-- {
		cells = append(cells, Cell{Col: r.Col, Row: row})
	}
	return cells
}
