package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/layout"
)

// Renderer draws a layout onto a terminal screen using the style's theme
// colors: one block per room cell, shaded blocks for corridor cells.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the layout to the screen.
func (r *Renderer) Render(l layout.Layout, theme catalog.Theme) {
	r.screen.Clear()

	roomStyle := tcell.StyleDefault.Foreground(themeColor(theme.RoomFill))
	corridorStyle := tcell.StyleDefault.Foreground(themeColor(theme.CorridorStroke))
	saveStyle := tcell.StyleDefault.Foreground(themeColor(theme.SaveFill))
	navStyle := tcell.StyleDefault.Foreground(themeColor(theme.NavigationFill))

	for _, c := range l.Corridors {
		for _, cell := range c.Cells[1 : len(c.Cells)-1] {
			r.screen.SetContent(cell.Col, cell.Row, '▒', corridorStyle)
		}
	}

	for _, region := range l.Regions {
		style := roomStyle
		switch region.Kind {
		case layout.KindSave:
			style = saveStyle
		case layout.KindNavigation:
			style = navStyle
		}
		for _, cell := range region.Rect.Cells() {
			r.screen.SetContent(cell.Col, cell.Row, '█', style)
		}
	}

	r.renderMessage("q/esc: close preview", l.Rows+1)
	r.screen.Show()
}

// renderMessage displays a message at the given row.
func (r *Renderer) renderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// Show opens a terminal screen, renders the layout and blocks until the user
// closes the preview with q, Esc or Ctrl-C.
func Show(l layout.Layout, theme catalog.Theme) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := NewRenderer(screen)
	for {
		renderer.Render(l, theme)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// themeColor converts a theme hex color to a terminal color.
func themeColor(hex string) tcell.Color {
	c, err := catalog.ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}
