package catalog

// Theme defines how a style renders: colors for the layout's shapes plus the
// stroke width used for room outlines and corridors.
type Theme struct {
	Background     string `json:"background"`     // Canvas background fill
	RoomFill       string `json:"roomFill"`       // Room rectangle fill
	RoomStroke     string `json:"roomStroke"`     // Room rectangle outline
	CorridorStroke string `json:"corridorStroke"` // Corridor path stroke
	SaveFill       string `json:"saveFill"`       // Save room overlay fill
	NavigationFill string `json:"navigationFill"` // Navigation room overlay fill
	StrokeWidth    int    `json:"strokeWidth"`    // Outline width in drawing units
}

// Style bundles a style code's generation parameters with its rendering theme.
type Style struct {
	ID   string `json:"id"`   // Style code (e.g., "castlevania-sotn")
	Name string `json:"name"` // Display name

	MinRoomSize int `json:"minRoomSize"` // Minimum room dimension in cells
	MaxRoomSize int `json:"maxRoomSize"` // Maximum room dimension in cells

	// Target room count range, expressed as rooms per 100 grid cells so the
	// same style scales across grid sizes.
	MinRoomsPer100Cells float64 `json:"minRoomsPer100Cells"`
	MaxRoomsPer100Cells float64 `json:"maxRoomsPer100Cells"`

	// BranchingFactor controls how many loop-forming corridors are added
	// beyond the spanning structure, as a fraction of its edge count.
	BranchingFactor float64 `json:"branchingFactor"`

	// DecorationDensity is the per-room probability of receiving a special
	// marking (save or navigation room).
	DecorationDensity float64 `json:"decorationDensity"`

	Theme Theme `json:"theme"`
}

// TargetRoomRange returns the inclusive room-count range for a grid with the
// given cell area.
func (s *Style) TargetRoomRange(area int) (min, max int) {
	min = int(float64(area) * s.MinRoomsPer100Cells / 100.0)
	max = int(float64(area) * s.MaxRoomsPer100Cells / 100.0)
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min, max
}

// StylesFile represents the structure of styles.json.
type StylesFile struct {
	Styles []Style `json:"styles"`
}

// LoadStyles loads style definitions from the embedded styles.json file.
func LoadStyles() ([]Style, error) {
	file, err := Load[StylesFile]("styles.json")
	if err != nil {
		return nil, err
	}
	return file.Styles, nil
}
