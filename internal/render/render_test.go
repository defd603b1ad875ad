package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/grid"
	"github.com/DiD92/map-generator/internal/layout"
)

func testTheme(t *testing.T) catalog.Theme {
	t.Helper()
	style, err := catalog.Resolve("castlevania-sotn")
	if err != nil {
		t.Fatalf("Failed to resolve style: %v", err)
	}
	return style.Theme
}

func testLayout() layout.Layout {
	return layout.Layout{
		Columns: 46,
		Rows:    32,
		Regions: []layout.Region{
			{ID: 0, Rect: grid.Rect{Col: 2, Row: 2, Width: 4, Height: 3}},
			{ID: 1, Rect: grid.Rect{Col: 12, Row: 2, Width: 3, Height: 3}, Kind: layout.KindSave},
		},
		Corridors: []layout.Corridor{
			{From: 0, To: 1, Cells: []grid.Cell{
				{Col: 5, Row: 3}, {Col: 6, Row: 3}, {Col: 7, Row: 3},
				{Col: 8, Row: 3}, {Col: 9, Row: 3}, {Col: 10, Row: 3},
				{Col: 11, Row: 3}, {Col: 12, Row: 3},
			}},
		},
	}
}

func TestRenderViewport(t *testing.T) {
	out := Render(testLayout(), testTheme(t))

	wantWidth := fmt.Sprintf(`width="%d"`, 46*CellSize)
	wantHeight := fmt.Sprintf(`height="%d"`, 32*CellSize)
	if !bytes.Contains(out, []byte(wantWidth)) {
		t.Errorf("Missing viewport width %s", wantWidth)
	}
	if !bytes.Contains(out, []byte(wantHeight)) {
		t.Errorf("Missing viewport height %s", wantHeight)
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := testLayout()
	theme := testTheme(t)

	first := Render(l, theme)
	for i := 0; i < 3; i++ {
		if !bytes.Equal(first, Render(l, theme)) {
			t.Fatal("Rendering the same layout must be byte-identical")
		}
	}
}

func TestRenderShapes(t *testing.T) {
	theme := testTheme(t)
	out := string(Render(testLayout(), theme))

	// Background + two rooms + one save overlay.
	if got := strings.Count(out, "<rect"); got != 4 {
		t.Errorf("Expected 4 rects, got %d", got)
	}
	if got := strings.Count(out, "<path"); got != 1 {
		t.Errorf("Expected 1 corridor path, got %d", got)
	}
	if !strings.Contains(out, theme.RoomFill) {
		t.Error("Room fill color missing from output")
	}
	if !strings.Contains(out, theme.SaveFill) {
		t.Error("Save overlay color missing from output")
	}
}

func TestRenderRoomGeometry(t *testing.T) {
	out := string(Render(testLayout(), testTheme(t)))

	// Region 0 at (2,2) size 4x3 in cell units.
	want := fmt.Sprintf(`x="%d" y="%d" width="%d" height="%d"`,
		2*CellSize, 2*CellSize, 4*CellSize, 3*CellSize)
	if !strings.Contains(out, want) {
		t.Errorf("Missing room rect %s", want)
	}

	// Corridor path starts at the center of its first cell.
	wantStart := fmt.Sprintf(`M%d,%d`, 5*CellSize+CellSize/2, 3*CellSize+CellSize/2)
	if !strings.Contains(out, wantStart) {
		t.Errorf("Missing corridor path start %s", wantStart)
	}
}
