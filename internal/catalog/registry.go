package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownStyle is returned by Resolve when a style code is not in the table.
var ErrUnknownStyle = errors.New("unknown style")

// Registry holds the loaded style table. It is immutable after construction
// and safe for concurrent readers.
type Registry struct {
	byID  map[string]*Style
	codes []string
}

// NewRegistry creates a registry from loaded style definitions.
func NewRegistry(styles []Style) (*Registry, error) {
	if len(styles) == 0 {
		return nil, errors.New("no styles loaded from styles.json")
	}

	byID := make(map[string]*Style, len(styles))
	codes := make([]string, 0, len(styles))

	for i := range styles {
		s := &styles[i]
		if err := validateStyle(s); err != nil {
			return nil, fmt.Errorf("style %q: %w", s.ID, err)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate style id %q", s.ID)
		}
		byID[s.ID] = s
		codes = append(codes, s.ID)
	}

	return &Registry{byID: byID, codes: codes}, nil
}

// LoadRegistry loads and creates a registry from the embedded styles.json.
func LoadRegistry() (*Registry, error) {
	styles, err := LoadStyles()
	if err != nil {
		return nil, err
	}
	return NewRegistry(styles)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Resolve returns the style for a code, or ErrUnknownStyle.
func (r *Registry) Resolve(code string) (*Style, error) {
	style, ok := r.byID[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, code)
	}
	return style, nil
}

// Codes returns the known style codes in declaration order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)
	return codes
}

var defaultRegistry = sync.OnceValue(MustLoadRegistry)

// Resolve looks up a style code in the default embedded registry.
func Resolve(code string) (*Style, error) {
	return defaultRegistry().Resolve(code)
}

// Codes returns the style codes known to the default embedded registry.
func Codes() []string {
	return defaultRegistry().Codes()
}

func validateStyle(s *Style) error {
	switch {
	case s.ID == "":
		return errors.New("missing id")
	case s.MinRoomSize < 1:
		return errors.New("minRoomSize must be at least 1")
	case s.MaxRoomSize < s.MinRoomSize:
		return errors.New("maxRoomSize must be >= minRoomSize")
	case s.MinRoomsPer100Cells <= 0 || s.MaxRoomsPer100Cells < s.MinRoomsPer100Cells:
		return errors.New("invalid room density range")
	case s.BranchingFactor < 0:
		return errors.New("branchingFactor must not be negative")
	case s.DecorationDensity < 0 || s.DecorationDensity > 1:
		return errors.New("decorationDensity must be within [0, 1]")
	case s.Theme.StrokeWidth <= 0:
		return errors.New("strokeWidth must be positive")
	}
	return validateTheme(&s.Theme)
}
