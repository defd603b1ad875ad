package catalog

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000") to a colorful.Color.
func ParseHexColor(hex string) (colorful.Color, error) {
	color, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color, nil
}

// MustParseHexColor converts a hex color string to a colorful.Color, panicking on error.
func MustParseHexColor(hex string) colorful.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

func validateTheme(t *Theme) error {
	colors := map[string]string{
		"background":     t.Background,
		"roomFill":       t.RoomFill,
		"roomStroke":     t.RoomStroke,
		"corridorStroke": t.CorridorStroke,
		"saveFill":       t.SaveFill,
		"navigationFill": t.NavigationFill,
	}

	for field, hex := range colors {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("theme field %s: %w", field, err)
		}
	}
	return nil
}
