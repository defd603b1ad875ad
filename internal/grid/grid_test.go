package grid

import "testing"

func TestInBounds(t *testing.T) {
	g := Grid{Columns: 10, Rows: 5}

	inside := []Cell{{0, 0}, {9, 0}, {0, 4}, {9, 4}, {5, 2}}
	for _, c := range inside {
		if !g.InBounds(c) {
			t.Errorf("Expected %v to be in bounds", c)
		}
	}

	outside := []Cell{{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {10, 5}}
	for _, c := range outside {
		if g.InBounds(c) {
			t.Errorf("Expected %v to be out of bounds", c)
		}
	}
}

func TestNeighbors(t *testing.T) {
	g := Grid{Columns: 4, Rows: 4}

	if n := g.Neighbors(Cell{2, 2}); len(n) != 4 {
		t.Errorf("Expected 4 neighbors for interior cell, got %d", len(n))
	}

	corner := g.Neighbors(Cell{0, 0})
	if len(corner) != 2 {
		t.Fatalf("Expected 2 neighbors for corner cell, got %d", len(corner))
	}
	for _, n := range corner {
		if !g.InBounds(n) {
			t.Errorf("Neighbor %v is out of bounds", n)
		}
	}

	if n := g.Neighbors(Cell{0, 2}); len(n) != 3 {
		t.Errorf("Expected 3 neighbors for edge cell, got %d", len(n))
	}
}

func TestManhattanDistance(t *testing.T) {
	cases := []struct {
		a, b Cell
		want int
	}{
		{Cell{0, 0}, Cell{0, 0}, 0},
		{Cell{0, 0}, Cell{3, 4}, 7},
		{Cell{3, 4}, Cell{0, 0}, 7},
		{Cell{5, 5}, Cell{2, 9}, 7},
	}

	for _, c := range cases {
		if got := ManhattanDistance(c.a, c.b); got != c.want {
			t.Errorf("ManhattanDistance(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{Col: 2, Row: 2, Width: 4, Height: 3}

	if !r.Intersects(Rect{Col: 4, Row: 3, Width: 4, Height: 4}) {
		t.Error("Expected overlapping rects to intersect")
	}
	if r.Intersects(Rect{Col: 6, Row: 2, Width: 2, Height: 2}) {
		t.Error("Edge-adjacent rects must not intersect")
	}
	if r.Intersects(Rect{Col: 0, Row: 0, Width: 2, Height: 2}) {
		t.Error("Disjoint rects must not intersect")
	}
}

func TestRectContainsAndCells(t *testing.T) {
	r := Rect{Col: 1, Row: 1, Width: 3, Height: 2}

	cells := r.Cells()
	if len(cells) != r.Area() {
		t.Fatalf("Expected %d cells, got %d", r.Area(), len(cells))
	}
	for _, c := range cells {
		if !r.Contains(c) {
			t.Errorf("Cell %v should be contained in %v", c, r)
		}
	}
	if r.Contains(Cell{4, 1}) || r.Contains(Cell{1, 3}) {
		t.Error("Cells past the far edges must not be contained")
	}
}

func TestRectBoundaryCells(t *testing.T) {
	r := Rect{Col: 0, Row: 0, Width: 4, Height: 3}

	boundary := r.BoundaryCells()
	want := 2*r.Width + 2*r.Height - 4
	if len(boundary) != want {
		t.Fatalf("Expected %d boundary cells, got %d", want, len(boundary))
	}

	seen := make(map[Cell]bool)
	for _, c := range boundary {
		if seen[c] {
			t.Errorf("Duplicate boundary cell %v", c)
		}
		seen[c] = true
		if !r.Contains(c) {
			t.Errorf("Boundary cell %v outside rect", c)
		}
	}
	if seen[Cell{1, 1}] || seen[Cell{2, 1}] {
		t.Error("Interior cells must not appear on the boundary")
	}

	// Degenerate rects are all boundary.
	thin := Rect{Col: 2, Row: 2, Width: 1, Height: 4}
	if len(thin.BoundaryCells()) != 4 {
		t.Errorf("Expected 4 boundary cells for 1x4 rect, got %d", len(thin.BoundaryCells()))
	}
}

func TestRectIn(t *testing.T) {
	g := Grid{Columns: 8, Rows: 6}

	if !(Rect{Col: 0, Row: 0, Width: 8, Height: 6}).In(g) {
		t.Error("Full-grid rect should fit")
	}
	if (Rect{Col: 5, Row: 0, Width: 4, Height: 2}).In(g) {
		t.Error("Rect past the right edge must not fit")
	}
	if (Rect{Col: -1, Row: 0, Width: 2, Height: 2}).In(g) {
		t.Error("Rect with negative origin must not fit")
	}
}
