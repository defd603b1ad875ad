// Package grid provides the coordinate space shared by map generation and
// corridor pathing: an integer cell lattice with 4-connected adjacency.
package grid

// Cell is a single grid position. It is a value type and is usable as a map key.
type Cell struct {
	Col, Row int
}

// ManhattanDistance returns the taxicab distance between two cells.
func ManhattanDistance(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// Grid describes a columns x rows lattice. All methods are pure.
type Grid struct {
	Columns, Rows int
}

// InBounds returns true if the cell lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Columns && c.Row >= 0 && c.Row < g.Rows
}

// Neighbors returns the in-bounds 4-connected neighbors of a cell.
// The order (up, down, left, right) is fixed so that callers iterating
// neighbors stay deterministic.
func (g Grid) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{Col: c.Col, Row: c.Row - 1},
		{Col: c.Col, Row: c.Row + 1},
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col + 1, Row: c.Row},
	}

	neighbors := make([]Cell, 0, 4)
	for _, n := range candidates {
		if g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Area returns the total number of cells in the grid.
func (g Grid) Area() int {
	return g.Columns * g.Rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
