// Package render converts a finalized layout into an SVG drawing according to
// a style's theme. Rendering is pure: the same layout and theme always
// produce byte-identical output.
package render

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/grid"
	"github.com/DiD92/map-generator/internal/layout"
)

// CellSize is the side of one grid cell in drawing units. The viewport is
// exactly columns*CellSize by rows*CellSize.
const CellSize = 48

// Render draws the layout as an SVG document.
func Render(l layout.Layout, theme catalog.Theme) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width := l.Columns * CellSize
	height := l.Rows * CellSize
	canvas.Start(width, height)

	canvas.Rect(0, 0, width, height, fmt.Sprintf(`fill=%q`, theme.Background))

	roomStyle := fmt.Sprintf(`fill=%q stroke=%q stroke-width="%d"`,
		theme.RoomFill, theme.RoomStroke, theme.StrokeWidth)
	for _, r := range l.Regions {
		canvas.Rect(
			r.Rect.Col*CellSize,
			r.Rect.Row*CellSize,
			r.Rect.Width*CellSize,
			r.Rect.Height*CellSize,
			roomStyle,
		)
	}

	corridorStyle := fmt.Sprintf(`fill="none" stroke=%q stroke-width="%d" stroke-linecap="square"`,
		theme.CorridorStroke, CellSize/3)
	for _, c := range l.Corridors {
		canvas.Path(corridorPath(c.Cells), corridorStyle)
	}

	// Save and navigation rooms get an inset overlay on their anchor cell so
	// they stay visible on top of the corridor strokes.
	for _, r := range l.Regions {
		var fill string
		switch r.Kind {
		case layout.KindSave:
			fill = theme.SaveFill
		case layout.KindNavigation:
			fill = theme.NavigationFill
		default:
			continue
		}
		inset := theme.StrokeWidth
		canvas.Rect(
			r.Rect.Col*CellSize+inset,
			r.Rect.Row*CellSize+inset,
			CellSize-2*inset,
			CellSize-2*inset,
			fmt.Sprintf(`fill=%q`, fill),
		)
	}

	canvas.End()
	return buf.Bytes()
}

// corridorPath builds the SVG path data for a corridor, tracing cell centers.
func corridorPath(cells []grid.Cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i == 0 {
			fmt.Fprintf(&b, "M%d,%d", centerOf(c.Col), centerOf(c.Row))
		} else {
			fmt.Fprintf(&b, " L%d,%d", centerOf(c.Col), centerOf(c.Row))
		}
	}
	return b.String()
}

func centerOf(index int) int {
	return index*CellSize + CellSize/2
}
